package engine

// FilterSet is a conjunctive predicate set over normalized records. Empty
// fields are unset and never exclude anything. Categorical predicates
// compare post-normalization, so setters canonicalize their input;
// date bounds are canonical "YYYY-MM-DD" strings, inclusive on both ends
// (an inclusive upper bound on the calendar day is end-of-day by
// construction). A FilterSet is rebuilt per request and never persisted.
type FilterSet struct {
	Business     string `json:"business,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
	Process      string `json:"process,omitempty"`
	SubType      string `json:"subType,omitempty"`
	Status       string `json:"status,omitempty"`
	Owner        string `json:"owner,omitempty"`
	DateFrom     string `json:"dateFrom,omitempty"`
	DateTo       string `json:"dateTo,omitempty"`
}

func (f *FilterSet) SetBusiness(raw string)     { f.Business = canonOrEmpty(raw) }
func (f *FilterSet) SetBusinessType(raw string) { f.BusinessType = canonOrEmpty(raw) }
func (f *FilterSet) SetProcess(raw string)      { f.Process = canonOrEmpty(raw) }
func (f *FilterSet) SetSubType(raw string)      { f.SubType = canonOrEmpty(raw) }
func (f *FilterSet) SetStatus(raw string)       { f.Status = canonOrEmpty(raw) }
func (f *FilterSet) SetOwner(raw string)        { f.Owner = canonOrEmpty(raw) }

// SetDateFrom accepts any parseable date representation and stores its
// canonical form. ok=false leaves the bound unset.
func (f *FilterSet) SetDateFrom(raw string) bool {
	if raw == "" {
		f.DateFrom = ""
		return true
	}
	d, ok := NormalizeDate(raw)
	if ok {
		f.DateFrom = d
	}
	return ok
}

func (f *FilterSet) SetDateTo(raw string) bool {
	if raw == "" {
		f.DateTo = ""
		return true
	}
	d, ok := NormalizeDate(raw)
	if ok {
		f.DateTo = d
	}
	return ok
}

func (f FilterSet) hasDateBound() bool { return f.DateFrom != "" || f.DateTo != "" }

// ApplyFilters returns the records passing every set predicate, in their
// original relative order. Input is never modified. Records with no
// resolvable date are excluded only while a date bound is set.
func ApplyFilters(records []NormalizedRecord, f FilterSet) []NormalizedRecord {
	out := make([]NormalizedRecord, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f FilterSet) matches(r NormalizedRecord) bool {
	if f.Business != "" && r.Business != f.Business {
		return false
	}
	if f.BusinessType != "" && r.BusinessType != f.BusinessType {
		return false
	}
	if f.Process != "" && r.Process != f.Process {
		return false
	}
	if f.SubType != "" && r.SubType != f.SubType {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Owner != "" && r.Owner != f.Owner {
		return false
	}
	if f.hasDateBound() {
		if r.CreateDate == "" {
			return false
		}
		if f.DateFrom != "" && r.CreateDate < f.DateFrom {
			return false
		}
		if f.DateTo != "" && r.CreateDate > f.DateTo {
			return false
		}
	}
	return true
}
