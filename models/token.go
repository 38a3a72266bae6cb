package models

import (
	"time"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
)

// ResourceToken grants access to a single storage file.
type ResourceToken struct {
	ID           string `json:"$id"`
	CreatedAt    string `json:"$createdAt"`
	ResourceID   string `json:"resourceId"`
	ResourceType string `json:"resourceType"`
	Expire       string `json:"expire"`
	Secret       string `json:"secret"`
	AccessedAt   string `json:"accessedAt"`
}

// Expires parses Expire. ok is false for tokens that never expire.
func (t ResourceToken) Expires() (expire time.Time, ok bool, err error) {
	if t.Expire == "" {
		return time.Time{}, false, nil
	}
	expire, err = core.ParseISODate(t.Expire)
	return expire, err == nil, err
}

// ResourceTokenList is a page of resource tokens.
type ResourceTokenList struct {
	Total  int             `json:"total"`
	Tokens []ResourceToken `json:"tokens"`
}
