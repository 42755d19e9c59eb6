package adapter

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-will-keeper/models"
)

// legacyCIDPattern matches CIDv0 tokens anywhere in a raw body. It is kept
// for gateways that answer with something other than the add JSON.
var legacyCIDPattern = regexp.MustCompile(`Qm[\w\d]+`)

// addEntry is one object of the /api/v0/add reply. The gateway streams one
// object per added file or directory.
type addEntry struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

// ExtractCID finds the content identifier in a gateway reply. The "Hash"
// field of the first JSON object that has one wins; when the body is not
// JSON or has no such field the legacy Qm pattern is tried over the raw
// text. It returns [ErrCIDNotFound] when neither yields a token.
func ExtractCID(body []byte) (models.UploadResult, error) {
	if entry, ok := firstAddEntry(body); ok {
		size, _ := strconv.ParseInt(entry.Size, 10, 64)
		return models.UploadResult{
			CID:      entry.Hash,
			FileName: entry.Name,
			Size:     size,
			Source:   models.CIDFromJSON,
		}, nil
	}

	if token := legacyCIDPattern.Find(body); token != nil {
		return models.UploadResult{
			CID:    string(token),
			Source: models.CIDFromLegacyPattern,
		}, nil
	}

	return models.UploadResult{}, ErrCIDNotFound
}

func firstAddEntry(body []byte) (addEntry, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	for {
		var entry addEntry
		if err := dec.Decode(&entry); err != nil {
			return addEntry{}, false
		}
		if strings.TrimSpace(entry.Hash) != "" {
			entry.Hash = strings.TrimSpace(entry.Hash)
			return entry, true
		}
	}
}
