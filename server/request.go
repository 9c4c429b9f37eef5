package server

import (
	"encoding/json"
	"io"

	"github.com/linku/unime/core"
)

// DecodeAnswers reads a quiz submission in the API wire format. The CLI
// uses it to accept the same answer files the frontend posts.
func DecodeAnswers(r io.Reader) (*core.Answers, error) {
	var req answersRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, err
	}
	return req.toAnswers(), nil
}

// answersRequest is the quiz submission wire format. Pointer fields
// distinguish "absent" from zero so absent weights default to 1 and
// absent traits default to the neutral 3.
type answersRequest struct {
	WA  *float64 `json:"wa"`
	WC  *float64 `json:"wc"`
	WSO *float64 `json:"wso"`

	AA  []string `json:"AA"`
	LS  *int     `json:"LS"`
	SP  *int     `json:"SP"`
	CO  *int     `json:"CO"`
	UR  *int     `json:"UR"`
	CR  *int     `json:"CR"`
	CE  *int     `json:"CE"`
	LC  []string `json:"LC"`
	ME  *int     `json:"ME"`
	CP  *int     `json:"CP"`
	ALT []string `json:"ALT"`

	CSB string   `json:"CSB"`
	SET string   `json:"SET"`
	HS  []string `json:"HS"`
	CPS string   `json:"CPS"`

	NS  *int     `json:"NS"`
	SPT []string `json:"SPT"`
	CLB []string `json:"CLB"`
	CEV *int     `json:"CEV"`
}

func (r *answersRequest) toAnswers() *core.Answers {
	return &core.Answers{
		WeightAcademic: floatOr(r.WA, 1),
		WeightCampus:   floatOr(r.WC, 1),
		WeightSocial:   floatOr(r.WSO, 1),

		LearningStyle:           intOr(r.LS, core.DefaultTrait),
		FirstYearSpecialization: intOr(r.SP, core.DefaultTrait),
		CoopImportance:          intOr(r.CO, core.DefaultTrait),
		ResearchImportance:      intOr(r.UR, core.DefaultTrait),
		CreativityOrientation:   intOr(r.CR, core.DefaultTrait),
		CareerCertainty:         intOr(r.CE, core.DefaultTrait),
		MathEnjoyment:           intOr(r.ME, core.DefaultTrait),
		CollaborationPreference: intOr(r.CP, core.DefaultTrait),

		Interests:     r.AA,
		LikedCourses:  r.LC,
		Alternatives:  r.ALT,
		HousingStyles: r.HS,
		Sports:        r.SPT,
		Clubs:         r.CLB,

		ClassSize:  r.CSB,
		Setting:    r.SET,
		CampusSize: r.CPS,

		NightScene:     intOr(r.NS, core.DefaultTrait),
		CulturalEvents: intOr(r.CEV, core.DefaultTrait),
	}
}

func floatOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

func intOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
