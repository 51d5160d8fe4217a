package api

import (
	"github.com/alvinbaena/pwd-toolkit/pkg/entropy"
	"github.com/alvinbaena/pwd-toolkit/pkg/generator"
	"github.com/alvinbaena/pwd-toolkit/pkg/hibp"
	"github.com/alvinbaena/pwd-toolkit/pkg/strength"
)

type queryRequest struct {
	Password string `json:"password" binding:"required"`
}

type queryResponse struct {
	Pwned       bool              `json:"pwned"`
	Occurrences int               `json:"occurrences"`
	Verified    bool              `json:"verified"`
	Strength    *passwordStrength `json:"strength,omitempty"`
}

type passwordStrength struct {
	Score            int     `json:"score"`
	Label            string  `json:"label"`
	CrackTime        float64 `json:"crackTime"`
	CrackTimeDisplay string  `json:"crackTimeDisplay"`
}

type hashRequest struct {
	Hash string `json:"hash" binding:"required"`
}

type analyzeRequest struct {
	Password    string   `json:"password" binding:"required"`
	UserInputs  []string `json:"userInputs"`
	CheckBreach bool     `json:"checkBreach"`
}

type analyzeResponse struct {
	Strength   strength.Result     `json:"strength"`
	CrackTimes []entropy.CrackTime `json:"crackTimes"`
	Breach     *hibp.Result        `json:"breach,omitempty"`
}

// History holds the recently used passwords, oldest first. It lives only for the request.
type policyRequest struct {
	Password string   `json:"password" binding:"required"`
	History  []string `json:"history" binding:"max=5"`
}

// Pointers tell a missing flag apart from false, missing flags keep the defaults.
type passwordRequest struct {
	Mode             string `json:"mode"`
	Length           int    `json:"length" binding:"omitempty,min=4,max=96"`
	Uppercase        *bool  `json:"uppercase"`
	Lowercase        *bool  `json:"lowercase"`
	Numbers          *bool  `json:"numbers"`
	Symbols          *bool  `json:"symbols"`
	ExcludeAmbiguous bool   `json:"excludeAmbiguous"`
	Recipe           string `json:"recipe"`
	Count            int    `json:"count" binding:"omitempty,min=1,max=50"`
	Source           string `json:"source"`
}

type passphraseRequest struct {
	Words     int     `json:"words" binding:"omitempty,min=3,max=8"`
	Casing    *bool   `json:"casing"`
	Numbers   *bool   `json:"numbers"`
	Symbols   *bool   `json:"symbols"`
	Separator *string `json:"separator"`
	Count     int     `json:"count" binding:"omitempty,min=1,max=50"`
	Source    string  `json:"source"`
}

type candidate struct {
	Value   string        `json:"value"`
	Entropy float64       `json:"entropy"`
	Label   entropy.Label `json:"label"`
}

type passphraseCandidate struct {
	Value       string                       `json:"value"`
	Strength    generator.PassphraseStrength `json:"strength"`
	Suggestions []string                     `json:"suggestions"`
}

type generateResponse[T any] struct {
	Source    string `json:"source"`
	Secure    bool   `json:"secure"`
	Warning   string `json:"warning,omitempty"`
	Passwords []T    `json:"passwords"`
}

type compareRequest struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

type compareResponse struct {
	Score   float64 `json:"score"`
	Verdict string  `json:"verdict,omitempty"`
}

type sourceResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Secure      bool   `json:"secure"`
	Recommended bool   `json:"recommended"`
}

func orDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
