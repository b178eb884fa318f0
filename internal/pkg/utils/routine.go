package utils

import (
	"encoding/base64"

	"github.com/goccy/go-json"
)

// Routines travel between users as a base64 wrapped JSON array of section
// ids, small enough to paste into a chat message.

func EncodeSectionIDs(sectionIDs []int) (string, error) {
	payload, err := json.Marshal(sectionIDs)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

func DecodeSectionIDs(encoded string) ([]int, error) {
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	var sectionIDs []int
	if err := json.Unmarshal(payload, &sectionIDs); err != nil {
		return nil, err
	}
	return sectionIDs, nil
}
