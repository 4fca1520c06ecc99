package input

import (
	"math/rand"
	"strings"
	"time"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/render"
	"github.com/san-kum/bounce/internal/sim"
)

// Key names follow bubbletea's KeyMsg.String() so the terminal front end
// can pass keys through untouched.
const (
	KeyReset = "r"
	KeyPause = "p"
	KeyUp    = "up"
	KeyDown  = "down"
	KeyLeft  = "left"
	KeyRight = "right"

	// parameter editor
	KeyPrevParam = "["
	KeyNextParam = "]"
	KeyParamDown = "-"
	KeyParamUp   = "="
	KeyParamPlus = "+"
)

type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionPause
	ActionGravity
	ActionRestitution
	ActionSelectParam
	ActionParam
)

func (a Action) String() string {
	switch a {
	case ActionReset:
		return "reset"
	case ActionPause:
		return "pause"
	case ActionGravity:
		return "gravity"
	case ActionRestitution:
		return "restitution"
	case ActionSelectParam:
		return "select param"
	case ActionParam:
		return "param"
	}
	return "none"
}

// Handler applies resize, click and key events to a scene. It must be
// called from the goroutine that runs frames.
type Handler struct {
	scene   *sim.Scene
	surface *render.Surface
	rng     physics.Rand
	params  *ParamEditor
}

func NewHandler(scene *sim.Scene, surface *render.Surface, rng physics.Rand) *Handler {
	if rng == nil {
		rng = NewRand(0)
	}
	return &Handler{
		scene:   scene,
		surface: surface,
		rng:     rng,
		params:  NewParamEditor(&scene.World, WorldParams),
	}
}

// NewRand returns a seeded source; seed 0 picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (h *Handler) Surface() *render.Surface { return h.surface }

// Params is the editor behind the [ ] - = keys.
func (h *Handler) Params() *ParamEditor { return h.params }

// Resize reconfigures the surface; the next frame picks up the new bounds.
func (h *Handler) Resize(width, height, ratio float64) bool {
	return h.surface.Resize(width, height, ratio)
}

// Click teleports the ball to a logical-pixel position with a random kick.
func (h *Handler) Click(x, y float64) {
	h.scene.Ball.Kick(x, y, h.rng)
}

// ClickDevice is Click for a position in device pixels.
func (h *Handler) ClickDevice(x, y float64) {
	h.Click(h.surface.ToLogical(x, y))
}

// Press handles a single key. Unknown keys are ignored.
func (h *Handler) Press(key string) Action {
	switch key {
	case KeyUp:
		h.scene.World.AdjustGravity(physics.GravityStep)
		return ActionGravity
	case KeyDown:
		h.scene.World.AdjustGravity(-physics.GravityStep)
		return ActionGravity
	case KeyRight:
		h.scene.World.AdjustRestitution(physics.RestitutionStep)
		return ActionRestitution
	case KeyLeft:
		h.scene.World.AdjustRestitution(-physics.RestitutionStep)
		return ActionRestitution
	case KeyPrevParam:
		h.params.Select(-1)
		return ActionSelectParam
	case KeyNextParam:
		h.params.Select(1)
		return ActionSelectParam
	case KeyParamDown:
		return h.nudge(-1)
	case KeyParamUp, KeyParamPlus:
		return h.nudge(1)
	}

	switch strings.ToLower(key) {
	case KeyReset:
		h.scene.Ball.Reset(h.surface.Bounds())
		return ActionReset
	case KeyPause:
		h.scene.TogglePause()
		return ActionPause
	}
	return ActionNone
}

func (h *Handler) nudge(steps int) Action {
	if err := h.params.Nudge(steps); err != nil {
		return ActionNone
	}
	return ActionParam
}
