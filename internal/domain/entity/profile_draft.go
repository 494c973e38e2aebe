package entity

import (
	"strings"
	"time"

	domainerrors "creatorhub/internal/domain/errors"
)

const (
	// MsgCreatorBirthDateRequired is reported when a creator onboards without a birth date.
	MsgCreatorBirthDateRequired = "birthDate is required to create a new creator"
	// MsgAdvertiserSocialNetworksRequired is reported when an advertiser onboards without social networks.
	MsgAdvertiserSocialNetworksRequired = "socialNetworks is required to create a new advertiser"
)

// ProfileDetails is the kind-agnostic onboarding payload. Which fields are
// required depends on the account kind the details are applied to.
type ProfileDetails struct {
	Description    string
	UserName       string
	ContentType    string
	BirthDate      *time.Time
	SocialNetworks SocialNetworks
}

// ProfileDraft is a profile ready to be inserted during onboarding.
// The set of implementations is closed: *CreatorDraft and *AdvertiserDraft.
type ProfileDraft interface {
	// Kind reports the account kind this draft provisions.
	Kind() AccountKind
	// Validate checks the kind-specific required fields.
	Validate() error

	profileDraft()
}

// CreatorDraft is the insert shape of a CreatorProfile.
type CreatorDraft struct {
	AccountID     int64
	Description   string
	UserName      string
	ContentType   string
	BirthDate     time.Time
	YoutubeLinked bool
}

// Kind implements ProfileDraft.
func (*CreatorDraft) Kind() AccountKind { return AccountKindCreator }

// Validate implements ProfileDraft.
func (d *CreatorDraft) Validate() error {
	if d.AccountID <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("account id must be positive")
	}
	if d.BirthDate.IsZero() {
		return domainerrors.ErrValidationFailed.WrapMessage(MsgCreatorBirthDateRequired)
	}

	return nil
}

func (*CreatorDraft) profileDraft() {}

// AdvertiserDraft is the insert shape of an AdvertiserProfile.
type AdvertiserDraft struct {
	AccountID      int64
	Description    string
	UserName       string
	ContentType    string
	SocialNetworks SocialNetworks
}

// Kind implements ProfileDraft.
func (*AdvertiserDraft) Kind() AccountKind { return AccountKindAdvertiser }

// Validate implements ProfileDraft.
func (d *AdvertiserDraft) Validate() error {
	if d.AccountID <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("account id must be positive")
	}
	if len(d.SocialNetworks) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage(MsgAdvertiserSocialNetworksRequired)
	}

	return d.SocialNetworks.Validate()
}

func (*AdvertiserDraft) profileDraft() {}

// NewProfileDraft builds the draft matching the account's kind from the onboarding details.
func NewProfileDraft(account *Account, details ProfileDetails) (ProfileDraft, error) {
	var draft ProfileDraft

	switch account.Kind {
	case AccountKindCreator:
		if details.BirthDate == nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage(MsgCreatorBirthDateRequired)
		}
		draft = &CreatorDraft{
			AccountID:     account.ID,
			Description:   strings.TrimSpace(details.Description),
			UserName:      strings.TrimSpace(details.UserName),
			ContentType:   strings.TrimSpace(details.ContentType),
			BirthDate:     *details.BirthDate,
			YoutubeLinked: true,
		}
	case AccountKindAdvertiser:
		networks, err := details.SocialNetworks.Normalize()
		if err != nil {
			return nil, err
		}
		draft = &AdvertiserDraft{
			AccountID:      account.ID,
			Description:    strings.TrimSpace(details.Description),
			UserName:       strings.TrimSpace(details.UserName),
			ContentType:    strings.TrimSpace(details.ContentType),
			SocialNetworks: networks,
		}
	default:
		return nil, domainerrors.ErrInvalidAccountKind.WrapMessage("unknown account kind: " + account.Kind.String())
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	return draft, nil
}
