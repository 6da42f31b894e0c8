// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/plutigo/data"
)

const rewardAccountSize = 1 + AddressHashSize

// RewardAccount is a Shelley reward (stake) address
type RewardAccount struct {
	networkId      uint8
	stakingPayload AddressPayload
}

func (RewardAccount) isAddress() {}

// NewRewardAccount returns a reward account for the provided key or script hash staking credential
func NewRewardAccount(
	networkId uint8,
	stakingPayload AddressPayload,
) (RewardAccount, error) {
	if networkId > AddressHeaderNetworkMask {
		return RewardAccount{}, fmt.Errorf("invalid network ID: %d", networkId)
	}
	switch stakingPayload.(type) {
	case AddressPayloadKeyHash, AddressPayloadScriptHash:
	default:
		return RewardAccount{}, fmt.Errorf(
			"unsupported staking payload type: %T",
			stakingPayload,
		)
	}
	return RewardAccount{
		networkId:      networkId,
		stakingPayload: stakingPayload,
	}, nil
}

// NewRewardAccountFromBytes decodes a reward account from its binary serialization
func NewRewardAccountFromBytes(addrBytes []byte) (RewardAccount, error) {
	if len(addrBytes) != rewardAccountSize {
		return RewardAccount{}, AddressDecodeError{
			Kind: "reward account",
			Err: fmt.Errorf(
				"unexpected length: %d",
				len(addrBytes),
			),
		}
	}
	header := addrBytes[0]
	ret := RewardAccount{
		networkId: header & AddressHeaderNetworkMask,
	}
	hash := Blake2b224(addrBytes[1:])
	switch (header & AddressHeaderTypeMask) >> 4 {
	case AddressTypeNoneKey:
		ret.stakingPayload = AddressPayloadKeyHash{Hash: hash}
	case AddressTypeNoneScript:
		ret.stakingPayload = AddressPayloadScriptHash{Hash: hash}
	default:
		return RewardAccount{}, AddressDecodeError{
			Kind: "reward account",
			Err:  errors.New("header is not a reward account type"),
		}
	}
	return ret, nil
}

func (a RewardAccount) NetworkId() uint {
	return uint(a.networkId)
}

// StakingPayload returns the staking credential
func (a RewardAccount) StakingPayload() AddressPayload {
	return a.stakingPayload
}

func (a RewardAccount) addressType() uint8 {
	if _, ok := a.stakingPayload.(AddressPayloadScriptHash); ok {
		return AddressTypeNoneScript
	}
	return AddressTypeNoneKey
}

// Bytes returns the underlying bytes for the reward account
func (a RewardAccount) Bytes() ([]byte, error) {
	hashBytes := payloadHashBytes(a.stakingPayload)
	if len(hashBytes) != AddressHashSize {
		return nil, errors.New("reward account has no staking credential")
	}
	ret := make([]byte, 0, rewardAccountSize)
	ret = append(
		ret,
		(a.addressType()<<4)|(a.networkId&AddressHeaderNetworkMask),
	)
	ret = append(ret, hashBytes...)
	return ret, nil
}

// String returns the bech32-encoded version of the reward account
func (a RewardAccount) String() string {
	addrBytes, err := a.Bytes()
	if err != nil {
		panic(fmt.Sprintf("failed to get address bytes: %v", err))
	}
	return encodeBech32(addressHRP("stake", a.networkId), addrBytes)
}

func (a RewardAccount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// ToPlutusData returns the staking credential as a StakingHash
func (a RewardAccount) ToPlutusData() data.PlutusData {
	credPd := credentialPlutusData(a.stakingPayload)
	if credPd == nil {
		return nil
	}
	return data.NewConstr(0, credPd)
}
