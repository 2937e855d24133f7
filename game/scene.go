package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"gymhoops/court"
	"gymhoops/physics"
)

// Scene is the simulated gym: the physics world, the player camera and the ball
type Scene struct {
	World    *physics.World
	Camera   *court.FirstPersonCamera
	Ball     *court.Ball
	BallBody *physics.Body

	floor *physics.Material
}

// NewScene builds the gym from config and drops the ball at its spawn point
func NewScene(config Config) *Scene {
	world := physics.NewWorld(mgl64.Vec3{0, config.Gravity, 0})

	ballMaterial := physics.NewMaterial("ball")
	floorMaterial := physics.NewMaterial("floor")
	wallMaterial := physics.NewMaterial("wall")

	world.AddContactMaterial(physics.ContactMaterial{
		A: ballMaterial, B: floorMaterial,
		Restitution: config.FloorRestitution,
		Friction:    config.FloorFriction,
	})
	world.AddContactMaterial(physics.ContactMaterial{
		A: ballMaterial, B: wallMaterial,
		Restitution: config.WallRestitution,
		Friction:    config.WallFriction,
	})

	planes := append(config.Room.Planes(), config.Room.Ceiling())
	for _, plane := range planes {
		material := wallMaterial
		if plane.Name == "floor" {
			material = floorMaterial
		}
		world.AddPlane(physics.StaticPlane{
			Name:     plane.Name,
			Normal:   plane.Normal,
			Distance: plane.Distance,
			Material: material,
		})
	}

	body := physics.NewSphere(config.Ball.Radius, config.Ball.Mass, ballMaterial)
	body.SetPosition(config.BallSpawn)
	world.AddBody(body)

	camera := court.NewFirstPersonCamera(config.CameraSpawn, config.Room, config.WalkMargin)

	ball := court.NewBall(court.Env{
		Camera:  camera,
		Room:    config.Room,
		Body:    body,
		Gravity: config.Gravity,
	}, config.Ball, court.NewAimController(config.Aim), court.NewChargeController(config.Charge))

	return &Scene{
		World:    world,
		Camera:   camera,
		Ball:     ball,
		BallBody: body,
		floor:    floorMaterial,
	}
}

// Advance runs one frame of play: player motion, the ball state machine, then physics.
// The returned event says whether the ball was picked up or thrown.
func (s *Scene) Advance(frame FrameInput, dt float64, config Config) court.ThrowEvent {
	s.Camera.Look(-frame.LookX*config.MouseSensitivity, -frame.LookY*config.MouseSensitivity)

	move := mgl64.Vec2{frame.MoveForward, frame.MoveRight}
	if move.Len() > 1 {
		move = move.Normalize()
	}
	step := config.MoveSpeed * dt
	s.Camera.Walk(move.X()*step, move.Y()*step)

	event := s.Ball.Step(frame.Ball, dt)
	s.World.Step(config.PhysicsStep, dt, config.MaxSubSteps)

	// the free ball follows the body after the physics step
	if !s.Ball.Held() {
		s.Ball.Update(dt)
	}
	return event
}

// IsFloor reports whether a contact plane is the gym floor
func (s *Scene) IsFloor(contact physics.Contact) bool {
	return contact.Plane.Material == s.floor
}
