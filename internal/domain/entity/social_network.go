package entity

import (
	"maps"
	"slices"
	"strings"

	domainerrors "creatorhub/internal/domain/errors"
)

// SocialNetwork names a supported social platform.
type SocialNetwork string

const (
	SocialNetworkInstagram SocialNetwork = "instagram"
	SocialNetworkTikTok    SocialNetwork = "tiktok"
	SocialNetworkYouTube   SocialNetwork = "youtube"
	SocialNetworkTwitter   SocialNetwork = "twitter"
	SocialNetworkX         SocialNetwork = "x"
	SocialNetworkFacebook  SocialNetwork = "facebook"
	SocialNetworkTwitch    SocialNetwork = "twitch"
	SocialNetworkLinkedIn  SocialNetwork = "linkedin"
)

// IsValid checks if the SocialNetwork is a supported platform.
func (n SocialNetwork) IsValid() bool {
	switch n {
	case SocialNetworkInstagram, SocialNetworkTikTok, SocialNetworkYouTube, SocialNetworkTwitter,
		SocialNetworkX, SocialNetworkFacebook, SocialNetworkTwitch, SocialNetworkLinkedIn:
		return true
	default:
		return false
	}
}

// SocialNetworks maps a platform name to the advertiser's handle or link on it.
type SocialNetworks map[string]string

// Normalize returns a copy with lower-cased platform keys and trimmed handles.
// Two keys naming the same platform after normalization are rejected.
func (s SocialNetworks) Normalize() (SocialNetworks, error) {
	if s == nil {
		return nil, nil
	}

	normalized := make(SocialNetworks, len(s))
	for _, network := range slices.Sorted(maps.Keys(s)) {
		key := strings.ToLower(strings.TrimSpace(network))
		if _, ok := normalized[key]; ok {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("duplicate social network: " + key)
		}
		normalized[key] = strings.TrimSpace(s[network])
	}

	return normalized, nil
}

// Validate checks that every entry names a supported platform with a non-blank handle.
func (s SocialNetworks) Validate() error {
	for _, network := range slices.Sorted(maps.Keys(s)) {
		if !SocialNetwork(network).IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unsupported social network: " + network)
		}
		if strings.TrimSpace(s[network]) == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("social network handle is empty: " + network)
		}
	}

	return nil
}
