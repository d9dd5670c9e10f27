package models

import (
	"fmt"
	"strconv"
	"time"
)

// SampleRecord is one measurement observation travelling through the
// pipeline: a textual value and its unit label.
type SampleRecord struct {
	ID         string    `json:"id"`
	Value      string    `json:"value"`
	Unit       string    `json:"unit"`
	Source     string    `json:"source,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
}

// NewSampleRecord formats value as text and stamps the record with the
// current time.
func NewSampleRecord(value any, unit string) SampleRecord {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		s = fmt.Sprint(v)
	}
	return SampleRecord{Value: s, Unit: unit, ObservedAt: time.Now().UTC()}
}

// StoredSample is a consumed sample together with its outcome.
type StoredSample struct {
	SampleRecord
	TempC    float64 `json:"temp_c"`
	Decision float64 `json:"decision"`
}
