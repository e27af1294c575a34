package angryclones

import (
	"image/color"
	"math"

	"github.com/ByteArena/box2d"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ContactListener records how hard bodies are hit during a step.
type ContactListener struct {
	world *World
}

func (cl *ContactListener) BeginContact(contact box2d.B2ContactInterface) {}

func (cl *ContactListener) EndContact(contact box2d.B2ContactInterface) {}

func (cl *ContactListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

func (cl *ContactListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
	fixtureA := contact.GetFixtureA()
	fixtureB := contact.GetFixtureB()

	if fixtureA == nil || fixtureB == nil || impulse == nil {
		return
	}

	imp := normalImpulse(*impulse)
	if imp <= 0 {
		return
	}

	for _, fixture := range []*box2d.B2Fixture{fixtureA, fixtureB} {
		if body, ok := fixture.GetBody().GetUserData().(*Body); ok {
			body.recordImpulse(imp)
		}
	}
}

func normalImpulse(imp box2d.B2ContactImpulse) float64 {
	return math.Max(imp.NormalImpulses[0], imp.NormalImpulses[1])
}

type WorldProps struct {
	// Gravity is the vertical acceleration in pixels per second squared, negative pulls down.
	Gravity            float64
	PixelsPerMeter     float64
	TPS                int
	VelocityIterations int
	PositionIterations int

	ScreenWidth  float64
	ScreenHeight float64

	GroundY   float64
	RampStart Vector2
	RampEndX  float64
	RampY     float64
}

func WorldPropsFromConfig(cfg *Config) WorldProps {
	return WorldProps{
		Gravity:            cfg.Physics.Gravity,
		PixelsPerMeter:     cfg.Physics.PixelsPerMeter,
		TPS:                cfg.Window.TPS,
		VelocityIterations: cfg.Physics.VelocityIterations,
		PositionIterations: cfg.Physics.PositionIterations,
		ScreenWidth:        float64(cfg.Window.Width),
		ScreenHeight:       float64(cfg.Window.Height),
		GroundY:            cfg.Play.GroundY,
		RampStart:          cfg.Play.RampStart,
		RampEndX:           cfg.Play.RampEndX,
		RampY:              cfg.Play.RampY,
	}
}

// World is the physics space of one level: the scenery, the ramp and the
// dynamic bodies placed on it. Positions are in world pixels, y up.
type World struct {
	PhysicsWorld    *box2d.B2World
	contactListener *ContactListener

	Width  float64
	Height float64

	scale              Scale
	dt                 float64
	velocityIterations int
	positionIterations int

	groundY   float64
	scenery   *box2d.B2Body
	ramp      *box2d.B2Fixture
	rampStart Vector2
	rampEnd   Vector2
	ballArea  [2]Vector2

	Objects []*Body
}

func NewWorld(props WorldProps) *World {
	if props.PixelsPerMeter == 0 {
		props.PixelsPerMeter = 50
	}
	if props.TPS == 0 {
		props.TPS = 30
	}
	if props.VelocityIterations == 0 {
		props.VelocityIterations = 6
	}
	if props.PositionIterations == 0 {
		props.PositionIterations = 3
	}
	if props.ScreenWidth == 0 {
		props.ScreenWidth = 1024
	}
	if props.ScreenHeight == 0 {
		props.ScreenHeight = 600
	}

	scale := Scale(props.PixelsPerMeter)

	physicsWorld := box2d.MakeB2World(box2d.MakeB2Vec2(0, scale.ToMeters(props.Gravity)))
	physicsWorld.SetAllowSleeping(true)

	world := &World{
		PhysicsWorld:       &physicsWorld,
		Width:              props.ScreenWidth,
		Height:             props.ScreenHeight,
		scale:              scale,
		dt:                 1 / float64(props.TPS),
		velocityIterations: props.VelocityIterations,
		positionIterations: props.PositionIterations,
		groundY:            props.GroundY,
		rampStart:          props.RampStart,
		rampEnd:            Vector2{X: props.RampEndX, Y: props.RampY},
	}

	world.contactListener = &ContactListener{world: world}
	physicsWorld.SetContactListener(world.contactListener)

	world.createScenery()
	return world
}

func (w *World) createScenery() {
	bodyDef := box2d.MakeB2BodyDef()
	bodyDef.Type = box2d.B2BodyType.B2_staticBody
	w.scenery = w.PhysicsWorld.CreateBody(&bodyDef)

	w.addEdge(Vector2{X: 0, Y: w.groundY}, Vector2{X: w.Width + 26, Y: w.groundY}, 6)
	w.addEdge(Vector2{X: 0, Y: 0}, Vector2{X: 0, Y: w.Height * 4}, 6)

	w.ballArea = [2]Vector2{{X: 0, Y: w.rampStart.Y}, w.rampStart}
	w.addEdge(w.ballArea[0], w.ballArea[1], 0.2)

	w.ramp = w.addEdge(w.rampStart, w.rampEnd, 0.2)
}

func (w *World) addEdge(a, b Vector2, friction float64) *box2d.B2Fixture {
	edge := box2d.MakeB2EdgeShape()
	edge.Set(w.scale.Vec(a), w.scale.Vec(b))

	fixture := w.scenery.CreateFixture(&edge, 0)
	fixture.SetFriction(friction)
	return fixture
}

// SetRamp moves the far end of the ramp to height y. The ramp fixture is
// replaced, never duplicated.
func (w *World) SetRamp(y float64) {
	if y == w.rampEnd.Y && w.ramp != nil {
		return
	}

	if w.ramp != nil {
		w.scenery.DestroyFixture(w.ramp)
	}
	w.rampEnd.Y = y
	w.ramp = w.addEdge(w.rampStart, w.rampEnd, 0.2)

	for _, obj := range w.Objects {
		obj.body.SetAwake(true)
	}
}

func (w *World) RampEnd() Vector2 {
	return w.rampEnd
}

// SceneryFixtureCount is the number of fixtures on the static scenery body.
func (w *World) SceneryFixtureCount() int {
	n := 0
	for f := w.scenery.GetFixtureList(); f != nil; f = f.GetNext() {
		n++
	}
	return n
}

type BodyProps struct {
	Tag         BodyTag
	Position    Vector2
	Angle       float64
	Mass        float64
	Friction    float64
	Restitution float64

	// Width and Height size a box, Radius sizes a circle; all in pixels.
	Width  float64
	Height float64
	Radius float64

	Bullet  bool
	NoSleep bool
}

func (w *World) AddCircle(props BodyProps) *Body {
	circleShape := box2d.MakeB2CircleShape()
	r := w.scale.ToMeters(props.Radius)
	circleShape.SetRadius(r)

	obj := w.createBody(props, &circleShape, math.Pi*r*r)
	obj.Radius = props.Radius
	obj.Width = props.Radius * 2
	obj.Height = props.Radius * 2
	return obj
}

func (w *World) AddBox(props BodyProps) *Body {
	if props.Width <= 0 || props.Height <= 0 {
		panic("Width and Height must be greater than 0 for box bodies")
	}

	boxShape := box2d.MakeB2PolygonShape()
	hw, hh := w.scale.ToMeters(props.Width/2), w.scale.ToMeters(props.Height/2)
	boxShape.SetAsBox(hw, hh)

	obj := w.createBody(props, &boxShape, 4*hw*hh)
	obj.Width = props.Width
	obj.Height = props.Height
	return obj
}

func (w *World) createBody(props BodyProps, shape box2d.B2ShapeInterface, area float64) *Body {
	bodyDef := box2d.MakeB2BodyDef()
	bodyDef.Type = box2d.B2BodyType.B2_dynamicBody
	bodyDef.Position = w.scale.Vec(props.Position)
	bodyDef.Angle = props.Angle
	bodyDef.AllowSleep = !props.NoSleep
	bodyDef.Bullet = props.Bullet

	body := w.PhysicsWorld.CreateBody(&bodyDef)

	density := 1.0
	if props.Mass > 0 && area > 0 {
		density = props.Mass / area
	}

	fixture := body.CreateFixture(shape, density)
	fixture.SetFriction(props.Friction)
	fixture.SetRestitution(props.Restitution)

	obj := &Body{
		Tag:   props.Tag,
		body:  body,
		world: w,
	}
	body.SetUserData(obj)

	w.Objects = append(w.Objects, obj)
	return obj
}

func (w *World) Step() {
	w.PhysicsWorld.Step(w.dt, w.velocityIterations, w.positionIterations)
}

// Destroy releases every body. The world must not be stepped afterwards.
func (w *World) Destroy() {
	for _, obj := range w.Objects {
		w.PhysicsWorld.DestroyBody(obj.body)
		obj.body = nil
	}
	w.Objects = nil
}

func (w *World) ToScreen(p Vector2) Vector2 {
	return p.ToScreen(w.Height)
}

// DrawScenery draws the ramp and the ball area.
func (w *World) DrawScenery(screen *ebiten.Image, clr color.Color) {
	w.drawLine(screen, w.rampStart, w.rampEnd, clr)
	w.drawLine(screen, w.ballArea[0], w.ballArea[1], clr)
}

func (w *World) drawLine(screen *ebiten.Image, a, b Vector2, clr color.Color) {
	sa, sb := w.ToScreen(a), w.ToScreen(b)
	vector.StrokeLine(screen, float32(sa.X), float32(sa.Y), float32(sb.X), float32(sb.Y), 1, clr, true)
}
