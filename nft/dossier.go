// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nft - adapter for the SNIP-721 style collection contract
//
// holds the builders for the outbound messages the machine sends to a
// collection (register receive, batch transfer, set viewing key), the
// dossier query with its answer types, and the stored ↔ display pairs
// for every record carrying an address.
//
// display records hold parsed accounts and serialize to base58 JSON
// strings; stored records hold canonical bytes and are what the state
// layer persists.  conversion always goes through a Directory so the
// two forms cannot be mixed or compared against each other.
package nft

import (
	"github.com/gumball-inc/gumballd/account"
)

// Metadata - public token metadata
//
// no address fields, so the stored and display forms are the same type
type Metadata struct {
	TokenURI  *string    `json:"token_uri"` // off-chain metadata url
	Extension *Extension `json:"extension"` // on-chain metadata
}

// Extension - on-chain metadata following the OpenSea display fields
type Extension struct {
	Image               *string     `json:"image"`
	ImageData           *string     `json:"image_data"` // raw SVG data
	ExternalURL         *string     `json:"external_url"`
	Description         *string     `json:"description"`
	Name                *string     `json:"name"`
	Attributes          []Trait     `json:"attributes"`
	BackgroundColor     *string     `json:"background_color"` // six hex digits, no "#"
	AnimationURL        *string     `json:"animation_url"`
	YoutubeURL          *string     `json:"youtube_url"`
	Media               []MediaFile `json:"media"`
	ProtectedAttributes []string    `json:"protected_attributes"` // trait types hidden in private metadata
}

// Trait - one display attribute
type Trait struct {
	DisplayType *string `json:"display_type"`
	TraitType   *string `json:"trait_type"`
	Value       string  `json:"value"`
	MaxValue    *string `json:"max_value"` // for numeric traits
}

// MediaFile - one multimedia attachment
type MediaFile struct {
	FileType       *string         `json:"file_type"` // image / video / audio / text / font / application
	Extension      *string         `json:"extension"` // file extension
	Authentication *Authentication `json:"authentication"`
	URL            string          `json:"url"`
}

// Authentication - access data for a protected media file
type Authentication struct {
	Key  *string `json:"key"`  // decryption key or password
	User *string `json:"user"` // basic authentication user
}

// Royalty - display form of a single royalty
type Royalty struct {
	Recipient *account.Account `json:"recipient"` // base58
	Rate      uint16           `json:"rate"`
}

// StoredRoyalty - storage form of a single royalty
type StoredRoyalty struct {
	Recipient []byte `json:"recipient"` // canonical bytes
	Rate      uint16 `json:"rate"`
}

// RoyaltyInfo - display form of all royalty data for one token
type RoyaltyInfo struct {
	DecimalPlacesInRates uint8     `json:"decimal_places_in_rates"`
	Royalties            []Royalty `json:"royalties"`
}

// StoredRoyaltyInfo - storage form of RoyaltyInfo
type StoredRoyaltyInfo struct {
	DecimalPlacesInRates uint8           `json:"decimal_places_in_rates"`
	Royalties            []StoredRoyalty `json:"royalties"`
}

// MintRunInfo - display form of the mint provenance of one token
type MintRunInfo struct {
	CollectionCreator     *account.Account `json:"collection_creator"` // base58
	TokenCreator          *account.Account `json:"token_creator"`      // base58
	TimeOfMinting         *uint64          `json:"time_of_minting"`    // seconds since epoch
	MintRun               *uint32          `json:"mint_run"`
	SerialNumber          *uint32          `json:"serial_number"`
	QuantityMintedThisRun *uint32          `json:"quantity_minted_this_run"`
}

// StoredMintRunInfo - storage form of MintRunInfo
type StoredMintRunInfo struct {
	CollectionCreator     []byte  `json:"collection_creator"` // canonical bytes
	TokenCreator          []byte  `json:"token_creator"`      // canonical bytes
	TimeOfMinting         *uint64 `json:"time_of_minting"`
	MintRun               *uint32 `json:"mint_run"`
	SerialNumber          *uint32 `json:"serial_number"`
	QuantityMintedThisRun *uint32 `json:"quantity_minted_this_run"`
}

// Dossier - the public fields of interest from a collection's
// NftDossier answer
//
// the zero value is the empty dossier used whenever the collection
// query soft-fails
type Dossier struct {
	PublicMetadata *Metadata    `json:"public_metadata"`
	RoyaltyInfo    *RoyaltyInfo `json:"royalty_info"`
	MintRunInfo    *MintRunInfo `json:"mint_run_info"`
}

// StoredDossier - storage form of Dossier
type StoredDossier struct {
	PublicMetadata *Metadata          `json:"public_metadata"`
	RoyaltyInfo    *StoredRoyaltyInfo `json:"royalty_info"`
	MintRunInfo    *StoredMintRunInfo `json:"mint_run_info"`
}

// DossierReply - whole answer returned by a collection dossier query
type DossierReply struct {
	NftDossier Dossier `json:"nft_dossier"`
}

// ToStored - storage form of a royalty record
func (royalty Royalty) ToStored(dir Directory) (StoredRoyalty, error) {
	stored := StoredRoyalty{
		Rate: royalty.Rate,
	}
	if nil != royalty.Recipient {
		recipient, err := dir.Canonical(royalty.Recipient)
		if nil != err {
			return StoredRoyalty{}, err
		}
		stored.Recipient = recipient
	}
	return stored, nil
}

// ToDisplay - display form of a stored royalty record
func (stored StoredRoyalty) ToDisplay(dir Directory) (Royalty, error) {
	royalty := Royalty{
		Rate: stored.Rate,
	}
	if nil != stored.Recipient {
		recipient, err := dir.Display(stored.Recipient)
		if nil != err {
			return Royalty{}, err
		}
		royalty.Recipient = recipient
	}
	return royalty, nil
}

// ToStored - storage form of a token's royalty data
func (info RoyaltyInfo) ToStored(dir Directory) (StoredRoyaltyInfo, error) {
	stored := StoredRoyaltyInfo{
		DecimalPlacesInRates: info.DecimalPlacesInRates,
		Royalties:            make([]StoredRoyalty, len(info.Royalties)),
	}
	for i, royalty := range info.Royalties {
		s, err := royalty.ToStored(dir)
		if nil != err {
			return StoredRoyaltyInfo{}, err
		}
		stored.Royalties[i] = s
	}
	return stored, nil
}

// ToDisplay - display form of stored royalty data
func (stored StoredRoyaltyInfo) ToDisplay(dir Directory) (RoyaltyInfo, error) {
	info := RoyaltyInfo{
		DecimalPlacesInRates: stored.DecimalPlacesInRates,
		Royalties:            make([]Royalty, len(stored.Royalties)),
	}
	for i, s := range stored.Royalties {
		royalty, err := s.ToDisplay(dir)
		if nil != err {
			return RoyaltyInfo{}, err
		}
		info.Royalties[i] = royalty
	}
	return info, nil
}

// ToStored - storage form of mint provenance
func (info MintRunInfo) ToStored(dir Directory) (StoredMintRunInfo, error) {
	stored := StoredMintRunInfo{
		TimeOfMinting:         info.TimeOfMinting,
		MintRun:               info.MintRun,
		SerialNumber:          info.SerialNumber,
		QuantityMintedThisRun: info.QuantityMintedThisRun,
	}
	if nil != info.CollectionCreator {
		creator, err := dir.Canonical(info.CollectionCreator)
		if nil != err {
			return StoredMintRunInfo{}, err
		}
		stored.CollectionCreator = creator
	}
	if nil != info.TokenCreator {
		creator, err := dir.Canonical(info.TokenCreator)
		if nil != err {
			return StoredMintRunInfo{}, err
		}
		stored.TokenCreator = creator
	}
	return stored, nil
}

// ToDisplay - display form of stored mint provenance
func (stored StoredMintRunInfo) ToDisplay(dir Directory) (MintRunInfo, error) {
	info := MintRunInfo{
		TimeOfMinting:         stored.TimeOfMinting,
		MintRun:               stored.MintRun,
		SerialNumber:          stored.SerialNumber,
		QuantityMintedThisRun: stored.QuantityMintedThisRun,
	}
	if nil != stored.CollectionCreator {
		creator, err := dir.Display(stored.CollectionCreator)
		if nil != err {
			return MintRunInfo{}, err
		}
		info.CollectionCreator = creator
	}
	if nil != stored.TokenCreator {
		creator, err := dir.Display(stored.TokenCreator)
		if nil != err {
			return MintRunInfo{}, err
		}
		info.TokenCreator = creator
	}
	return info, nil
}

// ToStored - storage form of a dossier
func (dossier Dossier) ToStored(dir Directory) (StoredDossier, error) {
	stored := StoredDossier{
		PublicMetadata: dossier.PublicMetadata,
	}
	if nil != dossier.RoyaltyInfo {
		info, err := dossier.RoyaltyInfo.ToStored(dir)
		if nil != err {
			return StoredDossier{}, err
		}
		stored.RoyaltyInfo = &info
	}
	if nil != dossier.MintRunInfo {
		info, err := dossier.MintRunInfo.ToStored(dir)
		if nil != err {
			return StoredDossier{}, err
		}
		stored.MintRunInfo = &info
	}
	return stored, nil
}

// ToDisplay - display form of a stored dossier
func (stored StoredDossier) ToDisplay(dir Directory) (Dossier, error) {
	dossier := Dossier{
		PublicMetadata: stored.PublicMetadata,
	}
	if nil != stored.RoyaltyInfo {
		info, err := stored.RoyaltyInfo.ToDisplay(dir)
		if nil != err {
			return Dossier{}, err
		}
		dossier.RoyaltyInfo = &info
	}
	if nil != stored.MintRunInfo {
		info, err := stored.MintRunInfo.ToDisplay(dir)
		if nil != err {
			return Dossier{}, err
		}
		dossier.MintRunInfo = &info
	}
	return dossier, nil
}
