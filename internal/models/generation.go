package models

import (
	"encoding/json"
	"strconv"
)

// FlexID accepts both string and numeric JSON identifiers. Catalog files
// exported from different stores use either.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) String() string {
	return string(id)
}

// FlexIDFromInt is used when falling back to a record's batch index.
func FlexIDFromInt(n int) FlexID {
	return FlexID(strconv.Itoa(n))
}

// GenerationRecord is one listing candidate produced by the generation
// client, and the input record consumed by the validator. Title and
// description are pointers because a failed generation leaves them null.
type GenerationRecord struct {
	InputID             FlexID  `json:"input_id"`
	Model               string  `json:"model"`
	OK                  bool    `json:"ok"`
	EbayTitle           *string `json:"ebay_title"`
	EbayDescriptionHTML *string `json:"ebay_description_html"`
	InputTokens         int     `json:"input_tokens"`
	OutputTokens        int     `json:"output_tokens"`
	TotalTokens         int     `json:"total_tokens"`
	Error               string  `json:"error,omitempty"`
	LatencySec          float64 `json:"latency_sec,omitempty"`

	// Source fields copied from the catalog item for traceability.
	SourceTitle       string `json:"source_title,omitempty"`
	SourceDescription string `json:"source_description,omitempty"`
	SourceBrand       string `json:"source_brand,omitempty"`
}

// Title returns the candidate title, empty when absent.
func (r GenerationRecord) Title() string {
	if r.EbayTitle == nil {
		return ""
	}
	return *r.EbayTitle
}

// DescriptionHTML returns the candidate description, empty when absent.
func (r GenerationRecord) DescriptionHTML() string {
	if r.EbayDescriptionHTML == nil {
		return ""
	}
	return *r.EbayDescriptionHTML
}
