package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smereddy/vibetrail/internal/config"
	"github.com/smereddy/vibetrail/internal/core"
	"github.com/smereddy/vibetrail/internal/core/insight"
	"github.com/smereddy/vibetrail/internal/core/model"
	"github.com/smereddy/vibetrail/internal/core/seed"
	"github.com/smereddy/vibetrail/internal/llm"
	"github.com/smereddy/vibetrail/internal/taste"
)

type Server struct {
	Engine *core.Engine
	Seeds  *seed.Extractor
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Falling back to env configuration", cfgPath, err)
		cfg = &config.Config{}
	}

	// Env vars win over file values.
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("TASTE_BASE_URL"); v != "" {
		cfg.Taste.BaseURL = v
	}
	if v := os.Getenv("TASTE_API_KEY"); v != "" {
		cfg.Taste.APIKey = v
	}
	if cfg.Taste.BaseURL == "" {
		cfg.Taste.BaseURL = "http://localhost:8090"
	}

	// The LLM collaborator is optional end to end: without it, seed
	// extraction runs on heuristics and the narrative step is skipped.
	var llmClient llm.LLMClient
	if cfg.LLM.Provider != "" {
		llmClient, err = llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Fatalf("Failed to initialize LLM client: %v", err)
		}
	} else {
		log.Println("No LLM provider configured; running with heuristic extraction only")
	}

	var narrator core.Narrator
	if llmClient != nil {
		narrator = insight.NewNarrator(llmClient, cfg.Prompts.Narrative)
	}

	engine := core.NewEngine(taste.NewClient(cfg.Taste.BaseURL, cfg.Taste.APIKey), narrator)
	if cfg.Engine.MaxEntitiesPerCategory > 0 {
		engine.Discoverer.MaxPerCategory = cfg.Engine.MaxEntitiesPerCategory
	}
	if cfg.Engine.MaxConnections > 0 {
		engine.Discoverer.MaxConnections = cfg.Engine.MaxConnections
	}
	if cfg.Engine.MinConnectionStrength > 0 {
		engine.Discoverer.MinStrength = cfg.Engine.MinConnectionStrength
	}
	if cfg.Engine.NarrativeTimeoutSeconds > 0 {
		engine.NarrativeTimeout = time.Duration(cfg.Engine.NarrativeTimeoutSeconds) * time.Second
	}

	return &Server{
		Engine: engine,
		Seeds:  seed.NewExtractor(llmClient, cfg.Prompts.Seeds),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/ecosystem", s.BuildEcosystem)
	r.POST("/tabs", s.ComputeTabs)

	return r
}

type EcosystemRequest struct {
	Vibe     string `json:"vibe" binding:"required"`
	Location string `json:"location"`
}

func (s *Server) BuildEcosystem(c *gin.Context) {
	var req EcosystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	seeds, vibeCtx, err := s.Seeds.Extract(c.Request.Context(), req.Vibe)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ecosystem, err := s.Engine.BuildEcosystem(c.Request.Context(), core.BuildRequest{
		Vibe:     req.Vibe,
		Location: req.Location,
		Context:  vibeCtx,
		Seeds:    seeds,
	})
	if err != nil {
		log.Printf("Failed to build ecosystem: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build ecosystem"})
		return
	}

	c.JSON(http.StatusOK, ecosystem)
}

type TabsRequest struct {
	Context model.VibeContext `json:"context"`
}

func (s *Server) ComputeTabs(c *gin.Context) {
	var req TabsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tabs": s.Engine.Prioritizer.ComputeTabs(req.Context)})
}
