package request

// SessionRequest adds rated slips to the session or alters line quantities.
// One of Tokens or Alter must be set.
type SessionRequest struct {
	Tokens []string       `json:"tokens" binding:"omitempty,dive,required"`
	Alter  map[string]int `json:"alter" binding:"omitempty,dive,min=0"`
}

func (r *SessionRequest) Empty() bool {
	return len(r.Tokens) == 0 && len(r.Alter) == 0
}
