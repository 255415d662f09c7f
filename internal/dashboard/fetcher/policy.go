package fetcher

import (
	"fmt"
	"strings"
)

// CacheMode mirrors the cache modes of a browser fetch request.
type CacheMode string

const (
	CacheDefault      CacheMode = "default"
	CacheNoStore      CacheMode = "no-store"
	CacheNoCache      CacheMode = "no-cache"
	CacheForceCache   CacheMode = "force-cache"
	CacheOnlyIfCached CacheMode = "only-if-cached"
)

func ParseCacheMode(text string) (CacheMode, error) {
	mode := CacheMode(strings.ToLower(strings.TrimSpace(text)))
	switch mode {
	case "":
		return CacheDefault, nil
	case CacheDefault, CacheNoStore, CacheNoCache, CacheForceCache, CacheOnlyIfCached:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown cache mode %q", text)
	}
}

// CredentialsMode decides when the configured basic auth credentials are sent.
type CredentialsMode string

const (
	CredentialsOmit       CredentialsMode = "omit"
	CredentialsSameOrigin CredentialsMode = "same-origin"
	CredentialsInclude    CredentialsMode = "include"
)

func ParseCredentialsMode(text string) (CredentialsMode, error) {
	mode := CredentialsMode(strings.ToLower(strings.TrimSpace(text)))
	switch mode {
	case "":
		return CredentialsSameOrigin, nil
	case CredentialsOmit, CredentialsSameOrigin, CredentialsInclude:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown credentials mode %q", text)
	}
}
