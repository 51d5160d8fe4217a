package api

import (
	"net/http"

	"github.com/alvinbaena/pwd-toolkit/pkg/entropy"
	"github.com/alvinbaena/pwd-toolkit/pkg/generator"
	"github.com/alvinbaena/pwd-toolkit/pkg/random"
	"github.com/alvinbaena/pwd-toolkit/pkg/similarity"
	"github.com/gin-gonic/gin"
)

const insecureWarning = "this source is not cryptographically secure, do not use the result as a real password"

type generateApi struct {
	source random.Source
}

// resolveSource falls back to the server default when the request names no source.
func (g *generateApi) resolveSource(name string) (random.Source, error) {
	if name == "" {
		return g.source, nil
	}
	return random.ParseSource(name)
}

func (g *generateApi) password(c *gin.Context) {
	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source, err := g.resolveSource(req.Source)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mode, err := generator.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := generator.DefaultOptions()
	opts.Mode = mode
	opts.Source = source
	opts.Uppercase = orDefault(req.Uppercase, opts.Uppercase)
	opts.Lowercase = orDefault(req.Lowercase, opts.Lowercase)
	opts.Numbers = orDefault(req.Numbers, opts.Numbers)
	opts.Symbols = orDefault(req.Symbols, opts.Symbols)
	opts.ExcludeAmbiguous = req.ExcludeAmbiguous
	if req.Length > 0 {
		opts.Length = req.Length
	}
	if req.Recipe != "" {
		opts.Recipe = req.Recipe
	}

	values, err := generator.Passwords(max(req.Count, 1), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := generateResponse[candidate]{Source: source.String(), Secure: source.Secure()}
	if !source.Secure() {
		resp.Warning = insecureWarning
	}
	for _, v := range values {
		d := entropy.Estimate(v)
		resp.Passwords = append(resp.Passwords, candidate{Value: v, Entropy: d.Entropy, Label: entropy.LabelFor(d.Entropy)})
	}

	c.JSON(http.StatusOK, resp)
}

func (g *generateApi) passphrase(c *gin.Context) {
	var req passphraseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source, err := g.resolveSource(req.Source)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := generator.DefaultPassphraseOptions()
	opts.Source = source
	opts.Casing = orDefault(req.Casing, opts.Casing)
	opts.Numbers = orDefault(req.Numbers, opts.Numbers)
	opts.Symbols = orDefault(req.Symbols, opts.Symbols)
	if req.Words > 0 {
		opts.WordCount = req.Words
	}
	if req.Separator != nil {
		opts.Separator = *req.Separator
	}

	values, err := generator.Passphrases(max(req.Count, 1), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := generateResponse[passphraseCandidate]{Source: source.String(), Secure: source.Secure()}
	if !source.Secure() {
		resp.Warning = insecureWarning
	}
	for _, v := range values {
		resp.Passwords = append(resp.Passwords, passphraseCandidate{
			Value:       v,
			Strength:    generator.EstimatePassphrase(v),
			Suggestions: generator.SuggestPassphraseImprovements(v),
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (g *generateApi) sources(c *gin.Context) {
	var resp []sourceResponse
	for _, s := range random.Sources() {
		resp = append(resp, sourceResponse{
			Name:        s.String(),
			Description: s.Description(),
			Secure:      s.Secure(),
			Recommended: s.Recommended(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score := similarity.Compare(req.First, req.Second)
	c.JSON(http.StatusOK, compareResponse{Score: score, Verdict: similarity.Verdict(score)})
}

func RegisterGenerateApi(group *gin.RouterGroup, source random.Source) {
	g := &generateApi{source: source}

	group.GET("/sources", g.sources)
	group.POST("/compare", compare)

	gen := group.Group("/generate")
	gen.POST("/password", g.password)
	gen.POST("/passphrase", g.passphrase)
}
