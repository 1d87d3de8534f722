package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/bst"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/step"
)

type VisualizeRequest struct {
	Algorithm string `json:"algorithm" binding:"required,algorithm"`
	Array     []int  `json:"array"`
	Target    *int   `json:"target"`
}

type VisualizeResponse struct {
	Algorithm string             `json:"algorithm"`
	Mode      string             `json:"mode"`
	Steps     step.Sequence      `json:"steps"`
	Stats     map[string]float64 `json:"stats"`
	Warning   string             `json:"warning,omitempty"`
}

type AlgorithmInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Mode  string `json:"mode"`
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators installs the "algorithm" binding tag on gin's shared
// validator once per process. The tag accepts built-in algorithm names.
func registerValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = errors.New("binding validator is not a *validator.Validate")
			return
		}
		reg := algo.NewRegistry()
		validatorsErr = v.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
			_, err := reg.Get(fl.Field().String())
			return err == nil
		})
	})
	return validatorsErr
}

func badRequest(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := fmt.Sprintf("invalid %s: failed %q check", fe.Field(), fe.Tag())
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("missing %s", fe.Field())
		case "algorithm":
			msg = fmt.Sprintf("unknown algorithm: %v", fe.Value())
		case "oneof":
			msg = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func HandleAlgorithms(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var out []AlgorithmInfo
		for _, name := range deps.Registry.List() {
			a, _ := deps.Registry.Get(name)
			out = append(out, AlgorithmInfo{Name: a.Name, Title: a.Title, Mode: a.Mode.String()})
		}
		c.JSON(http.StatusOK, gin.H{"algorithms": out})
	}
}

// HandleVisualize runs a generator to completion and returns every step.
// Binary search input is sorted first and the response carries a warning.
func HandleVisualize(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VisualizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		a, err := deps.Registry.Get(req.Algorithm)
		if err != nil {
			badRequest(c, err)
			return
		}

		// arrays from /api/array may be as long as MaxGenerated
		lim := deps.Config.Limits()
		lim.MaxLength = max(lim.MaxLength, lim.MaxGenerated)
		array, err := input.Normalize(req.Array, lim)
		if err != nil {
			badRequest(c, err)
			return
		}

		target := deps.Config.Search.Target
		if req.Target != nil {
			target = *req.Target
		}

		var warning string
		if a.Mode == step.ModeBinarySearch {
			sorted, warn := input.PrepareForBinarySearch(array)
			array = sorted
			if warn != nil {
				warning = warn.Error()
			}
		}

		seq, err := a.Generate(array, target)
		if err != nil {
			var ve *step.ValidationError
			if errors.As(err, &ve) {
				badRequest(c, err)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		deps.Metrics.StepsGenerated.WithLabelValues(a.Name).Observe(float64(len(seq)))
		c.JSON(http.StatusOK, VisualizeResponse{
			Algorithm: a.Name,
			Mode:      a.Mode.String(),
			Steps:     seq,
			Stats:     metrics.Collect(seq),
			Warning:   warning,
		})
	}
}

// HandleArray generates a random array. Out of range parameters fall back
// to the configured defaults instead of failing.
func HandleArray(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := deps.Config.Input

		size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(cfg.DefaultSize)))
		if err != nil || size < 1 || size > cfg.MaxGenerated {
			size = cfg.DefaultSize
		}
		maxVal, err := strconv.Atoi(c.DefaultQuery("max_val", strconv.Itoa(cfg.MaxValue)))
		if err != nil || maxVal < 1 {
			maxVal = cfg.MaxValue
		}

		rng := deps.random()
		lim := input.Limits{MinValue: 1, MaxValue: maxVal, MaxGenerated: cfg.MaxGenerated}
		array, err := input.Random(size, lim, rng)
		if err != nil {
			badRequest(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"array":  array,
			"target": input.PickTarget(array, deps.Config.Search.Target, rng),
		})
	}
}

// HandleBST applies one operation to the submitted tree snapshot.
func HandleBST(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bst.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		op, err := bst.ParseOperation(req.Operation)
		if err != nil {
			badRequest(c, err)
			return
		}

		cfg := deps.Config.BST
		if err := bst.ValidateValue(*req.Value, cfg.MinValue, cfg.MaxValue); err != nil {
			deps.Metrics.BSTOperations.WithLabelValues(string(op), "rejected").Inc()
			badRequest(c, err)
			return
		}

		steps, tree, err := bst.Apply(req.TreeState, op, *req.Value)
		if err != nil {
			deps.Metrics.BSTOperations.WithLabelValues(string(op), "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("error during bst operation: %v", err)})
			return
		}

		deps.Metrics.BSTOperations.WithLabelValues(string(op), "ok").Inc()
		deps.Logger.Debug("bst operation", "operation", op, "value", *req.Value, "steps", len(steps), "height", tree.Height())
		c.JSON(http.StatusOK, bst.Response{Steps: steps, NewTreeState: tree})
	}
}
