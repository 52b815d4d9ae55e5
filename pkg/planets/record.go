package planets

import "github.com/agentstation/utc"

// ProviderRecord is one provider's normalized view of a single planet:
// canonical fields with units already converted, plus retrieval metadata.
// An empty Fields map is a valid record that simply contributes nothing.
type ProviderRecord struct {
	Source      SourceID        `json:"source"`
	Fields      map[Field]Value `json:"-"`
	RetrievedAt utc.Time        `json:"retrieved_at"`
}

// NewProviderRecord returns an empty record for the given source stamped
// with the given retrieval time.
func NewProviderRecord(source SourceID, retrievedAt utc.Time) *ProviderRecord {
	return &ProviderRecord{
		Source:      source,
		Fields:      make(map[Field]Value),
		RetrievedAt: retrievedAt,
	}
}

// Set stores a present value for a canonical field. Absent values are
// dropped rather than stored, so Fields never contains empty entries.
func (r *ProviderRecord) Set(field Field, v Value) {
	if !v.IsPresent() {
		return
	}
	if r.Fields == nil {
		r.Fields = make(map[Field]Value)
	}
	r.Fields[field] = v
}

// Get returns the value for a canonical field and whether it is present.
func (r *ProviderRecord) Get(field Field) (Value, bool) {
	v, ok := r.Fields[field]
	return v, ok
}

// Len returns the number of present fields.
func (r *ProviderRecord) Len() int {
	return len(r.Fields)
}

// Empty reports whether the record carries no usable fields.
func (r *ProviderRecord) Empty() bool {
	return len(r.Fields) == 0
}
