// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/alvinbaena/pwd-toolkit/pkg/entropy"
	"github.com/alvinbaena/pwd-toolkit/pkg/hibp"
	"github.com/alvinbaena/pwd-toolkit/pkg/strength"
	"github.com/gin-gonic/gin"
)

// BreachChecker is the part of hibp.Checker the handlers use.
type BreachChecker interface {
	Check(ctx context.Context, password string) hibp.Result
	CheckHash(ctx context.Context, hash string) (hibp.Result, error)
}

type queryApi struct {
	checker BreachChecker
}

func (q *queryApi) checkPassword(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := q.checker.Check(c.Request.Context(), req.Password)
	s := strength.Analyze(req.Password)
	c.JSON(http.StatusOK, queryResponse{
		Pwned:       res.Breached,
		Occurrences: res.Occurrences,
		Verified:    res.Verified,
		Strength: &passwordStrength{
			Score:            s.Score,
			Label:            s.Label,
			CrackTime:        s.CrackTime,
			CrackTimeDisplay: s.CrackTimeDisplay,
		},
	})
}

func (q *queryApi) checkHash(c *gin.Context) {
	var req hashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := q.checker.CheckHash(c.Request.Context(), req.Hash)
	if errors.Is(err, hibp.ErrInvalidHash) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, queryResponse{Pwned: res.Breached, Occurrences: res.Occurrences, Verified: res.Verified})
}

// analyze returns the full strength report. The breach lookup only runs when asked for.
func (q *queryApi) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := strength.Analyze(req.Password, req.UserInputs...)
	resp := analyzeResponse{
		Strength:   s,
		CrackTimes: entropy.CrackTimes(s.Estimate.Entropy),
	}
	if req.CheckBreach {
		res := q.checker.Check(c.Request.Context(), req.Password)
		resp.Breach = &res
	}

	c.JSON(http.StatusOK, resp)
}

// policy validates the password against the default policy, the history comes from
// the caller since nothing is kept between requests.
func (q *queryApi) policy(c *gin.Context) {
	var req policyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := strength.DefaultPolicy()
	for _, prev := range req.History {
		p.History.Add(prev)
	}

	c.JSON(http.StatusOK, p.Validate(req.Password))
}

func RegisterQueryApi(group *gin.RouterGroup, checker BreachChecker) {
	q := &queryApi{checker: checker}

	group.POST("/analyze", q.analyze)
	group.POST("/policy", q.policy)

	check := group.Group("/check")
	check.POST("/password", q.checkPassword)
	check.POST("/hash", q.checkHash)
}
