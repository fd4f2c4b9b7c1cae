package dto

// ItemCreate is the body of POST /action-items. Fields not listed here are
// accepted through Extra and written as-is, since the table's column set is
// not fixed.
type ItemCreate struct {
	Business     string   `json:"business" validate:"required"`
	BusinessType string   `json:"businessType,omitempty"`
	Process      string   `json:"process,omitempty"`
	SubType      string   `json:"subType,omitempty"`
	Deliverable  string   `json:"deliverable,omitempty"`
	Status       string   `json:"status,omitempty"`
	Owner        string   `json:"owner,omitempty"`
	Priority     string   `json:"priority,omitempty"`
	CreateDate   string   `json:"createDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Deadline     string   `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Minutes      *float64 `json:"minutes,omitempty" validate:"omitempty,gte=0"`

	Extra map[string]interface{} `json:"extra,omitempty"`
}

// Fields flattens the request into column/value pairs, skipping unset
// fields so the insert touches only provided columns.
func (c *ItemCreate) Fields() map[string]interface{} {
	out := make(map[string]interface{})
	put := func(k, v string) {
		if v != "" {
			out[k] = v
		}
	}
	put("business", c.Business)
	put("business_type", c.BusinessType)
	put("process", c.Process)
	put("sub_type", c.SubType)
	put("deliverable", c.Deliverable)
	put("status", c.Status)
	put("owner", c.Owner)
	put("priority", c.Priority)
	put("create_date", c.CreateDate)
	put("deadline", c.Deadline)
	if c.Minutes != nil {
		out["min"] = *c.Minutes
	}
	for k, v := range c.Extra {
		if k != "id" {
			out[k] = v
		}
	}
	return out
}

// ItemUpdate is the body of PUT /action-items/:id, arbitrary column/value
// pairs. The id column is never updatable.
type ItemUpdate map[string]interface{}

// Fields returns the update set with the id column stripped.
func (u ItemUpdate) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(u))
	for k, v := range u {
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}
