package game

import (
	"fmt"
	"math/rand/v2"

	"jelly-engine/internal/input"
	"jelly-engine/internal/maths"
	"jelly-engine/internal/physics"
	"jelly-engine/internal/prototype"
)

// Title is the window title shown before the first round completes.
const Title = "jelly paddle"

const (
	BrickCount    = 7
	StartScore    = 10000
	StartResponse = 30

	hoverHeight = 16
	paddleLift  = 1.5
	paddleNudge = 0.5
	ballFloor   = 2

	ballMask     uint32 = 0xFFF
	brickMask    uint32 = 0x02
	brickOriginX        = 48
	brickSpacing        = 100
	brickOriginY        = 500
)

// paddleHandles are the outer corner points the player drags; the rest follow through the edges.
var paddleHandles = [...]int{0, 1, 6, 7}

// Logger is where game events are reported.
type Logger interface {
	Logf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// Options configures New. Zero values pick a time-seeded random source and discard log output.
type Options struct {
	Rand *rand.Rand
	Log  Logger
}

// Game is the jelly paddle breakout: a paddle the player steers, a ball, and a row of bricks
// that fall away when the ball strikes them. All rules are physics hooks on the bodies.
type Game struct {
	World  *physics.World
	Paddle *physics.Body
	Ball   *physics.Body
	Bricks [BrickCount]*physics.Body

	// OnTitle receives the title text when a round completes.
	OnTitle func(title string)
	// OnBrickHit is called when an intact brick breaks.
	OnBrickHit func(brick *physics.Body)

	ballHome  []maths.Vec2
	brickHome [BrickCount][]maths.Vec2

	rng *rand.Rand
	log Logger

	broken   int
	score    int
	round    int
	response float32
}

// New builds the paddle, ball and bricks from protos ("paddle", "ball", "brick") and adds them
// to world in that order.
func New(world *physics.World, protos prototype.Set, opts Options) (*Game, error) {
	g := &Game{
		World:    world,
		rng:      opts.Rand,
		log:      opts.Log,
		score:    StartScore,
		response: StartResponse,
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.log == nil {
		g.log = nopLogger{}
	}

	paddle, err := build(protos, "paddle", 0, 0)
	if err != nil {
		return nil, err
	}
	ballProto, err := protos.Get("ball")
	if err != nil {
		return nil, err
	}
	ball, err := ballProto.Build()
	if err != nil {
		return nil, err
	}
	g.Paddle, g.Ball = paddle, ball
	g.ballHome = append([]maths.Vec2(nil), ballProto.Points...)

	paddle.SetLogic(physics.StepFunc(g.steerPaddle))
	paddle.OnCollision(ball, physics.CollisionFunc(g.bounceBall))
	world.Add(paddle)

	ball.SetMask(ballMask)
	ball.SetLogic(physics.StepFunc(g.tickBall))
	world.Add(ball)

	for i := range g.Bricks {
		brick, err := build(protos, "brick", brickX(i), brickOriginY)
		if err != nil {
			return nil, err
		}
		brick.SetGravity(false)
		brick.SetBounded(false)
		brick.SetMass(brick.Mass() * 2)
		brick.SetMask(brickMask << i)
		brick.OnCollision(ball, physics.CollisionFunc(g.hitBrick))
		g.brickHome[i] = append([]maths.Vec2(nil), brick.Points()...)
		g.Bricks[i] = brick
		world.Add(brick)
	}
	return g, nil
}

func build(protos prototype.Set, name string, dx, dy float32) (*physics.Body, error) {
	p, err := protos.Get(name)
	if err != nil {
		return nil, err
	}
	if dx != 0 || dy != 0 {
		if p, err = p.Offset(dx, dy); err != nil {
			return nil, err
		}
	}
	return p.Build()
}

func brickX(i int) float32 { return float32(brickOriginX + brickSpacing*i) }

// Score counts down by one every frame until the round's bricks are all broken.
func (g *Game) Score() int { return g.score }

// Broken is the number of bricks broken in the current round.
func (g *Game) Broken() int { return g.broken }

// Round is the number of completed rounds.
func (g *Game) Round() int { return g.round }

// Response is the upward kick the paddle gives the ball on contact. It halves every round.
func (g *Game) Response() float32 { return g.response }

// Step advances the world by one frame.
func (g *Game) Step(dt float64, in input.State) {
	g.World.Step(dt, in)
}

func (g *Game) steerPaddle(paddle *physics.Body, _ float64, in input.State) {
	var d maths.Vec2
	switch {
	case in.Held(input.KeyUp):
		d[1] = paddleLift
	case in.Held(input.KeyDown):
		d[1] = -paddleNudge
	}
	switch {
	case in.Held(input.KeyRight):
		d[0] = paddleNudge
	case in.Held(input.KeyLeft):
		d[0] = -paddleNudge
	}

	pts := paddle.Points()
	for _, i := range paddleHandles {
		pts[i] = pts[i].Add(d)
	}
	for i := range pts {
		pts[i][1] = maths.Max(pts[i][1], hoverHeight)
	}
}

func (g *Game) tickBall(ball *physics.Body, _ float64, _ input.State) {
	for _, p := range ball.Points() {
		if p[1] < ballFloor {
			g.resetBall(ball)
			break
		}
	}
	if g.broken < BrickCount {
		g.score--
	}
}

// resetBall puts the ball back at its spawn and nudges each point sideways by a whole number
// in [-4, 5], which gives it a little random drift and spin.
func (g *Game) resetBall(ball *physics.Body) {
	if err := ball.Reset(g.ballHome); err != nil {
		g.log.Logf("ball reset: %v", err)
		return
	}
	pts := ball.Points()
	for i := range pts {
		pts[i][0] += float32(g.rng.IntN(10) + 1 - 5)
	}
	g.log.Logf("ball reset, score %d", g.score)
}

func (g *Game) bounceBall(_, ball *physics.Body) {
	pts := ball.Points()
	for i := range pts {
		pts[i][1] += g.response
	}
}

func (g *Game) hitBrick(brick, _ *physics.Body) {
	if brick.Gravity() {
		return
	}
	g.broken++
	brick.SetGravity(true)
	brick.SetWireframe(true)
	g.log.Logf("brick broken (%d/%d)", g.broken, BrickCount)
	if g.OnBrickHit != nil {
		g.OnBrickHit(brick)
	}
	if g.broken == BrickCount {
		g.completeRound()
	}
}

func (g *Game) completeRound() {
	title := fmt.Sprintf("SCORE: %d", g.score)
	g.round++
	g.broken = 0
	g.response /= 2
	g.score = StartScore
	g.log.Logf("round %d complete, %s, paddle response now %v", g.round, title, g.response)
	if g.OnTitle != nil {
		g.OnTitle(title)
	}
	for i, brick := range g.Bricks {
		brick.SetGravity(false)
		brick.SetWireframe(false)
		brick.SetBounded(false)
		if err := brick.Reset(g.brickHome[i]); err != nil {
			g.log.Logf("brick %d reset: %v", i, err)
		}
	}
}
