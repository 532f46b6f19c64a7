package mq

type Payload uint32

const (
	PayloadUnknown Payload = iota
	PayloadFlairCreated
	PayloadInterestCreated
	PayloadProfileCreated
)

var Payloads = map[Payload]string{
	PayloadFlairCreated:    "flair_created",
	PayloadInterestCreated: "interest_created",
	PayloadProfileCreated:  "profile_created",
}

type FlairCreated struct {
	FlairID *uint64 `json:"flair_id"`
}

func (m *FlairCreated) GetFlairID() uint64 {
	if m != nil && m.FlairID != nil {
		return *m.FlairID
	}
	return 0
}

type InterestCreated struct {
	InterestID *uint64 `json:"interest_id"`
}

func (m *InterestCreated) GetInterestID() uint64 {
	if m != nil && m.InterestID != nil {
		return *m.InterestID
	}
	return 0
}

type ProfileCreated struct {
	ProfileID *uint64 `json:"profile_id"`
}

func (m *ProfileCreated) GetProfileID() uint64 {
	if m != nil && m.ProfileID != nil {
		return *m.ProfileID
	}
	return 0
}
