package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"gymhoops/game"
	"gymhoops/physics"
)

func main() {
	eyeX := flag.Float64("x", 0, "Eye x position")
	eyeZ := flag.Float64("z", 3, "Eye z position")
	yaw := flag.Float64("yaw", 0, "View yaw in degrees, 0 looks toward the front wall")
	look := flag.Float64("look", 0, "View pitch in degrees, positive looks up")
	aim := flag.Float64("aim", 0, "Aim pitch offset in degrees, positive aims up")
	charge := flag.Float64("charge", 1, "Throw charge in [0, 1]")
	speed := flag.Float64("speed", 0, "Throw speed in m/s, overrides -charge when set")
	simulate := flag.Bool("simulate", false, "Throw the ball in the physics world and report where it lands")
	maxTime := flag.Float64("max-time", 10, "Simulated seconds before giving up")
	verbose := flag.Bool("v", false, "Print every arc sample")
	flag.Parse()

	config, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	scene := game.NewScene(config)
	scene.Camera.Eye = mgl64.Vec3{*eyeX, config.CameraSpawn.Y(), *eyeZ}
	scene.Camera.Look(mgl64.DegToRad(*yaw), mgl64.DegToRad(*look))

	ball := scene.Ball
	ball.Hold()
	ball.Aim().SetPitch(mgl64.DegToRad(*aim))
	// a full second of easing puts the ball in the hand
	ball.Update(1)

	throwSpeed := *speed
	if throwSpeed <= 0 {
		throwSpeed = ball.Charge().SpeedFor(*charge)
	}

	arc, hit, ok := ball.Predict(throwSpeed)
	fmt.Printf("release %s  direction %s  speed %.2f m/s\n",
		formatVec(ball.Transform().Position), formatVec(ball.ThrowDirection()), throwSpeed)
	fmt.Printf("arc: %d samples\n", len(arc))
	if *verbose {
		for i, p := range arc {
			fmt.Printf("  %3d %s\n", i, formatVec(p))
		}
	}
	if ok {
		fmt.Printf("predicted hit: %s at %s normal %s\n", hit.Plane, formatVec(hit.Point), formatVec(hit.Normal))
	} else {
		fmt.Println("predicted hit: none within the sampled window")
	}

	if !*simulate {
		return
	}

	var first *physics.Contact
	scene.World.OnContact = func(c physics.Contact) {
		if first == nil {
			contact := c
			first = &contact
		}
	}
	ball.Throw(throwSpeed)

	for scene.World.Time() < *maxTime && first == nil {
		scene.World.Step(config.PhysicsStep, config.PhysicsStep, 1)
	}
	if first == nil {
		fmt.Printf("simulated: no contact within %.1f s\n", *maxTime)
		os.Exit(1)
	}
	fmt.Printf("simulated contact: %s at %s after %.2f s, impact %.2f m/s\n",
		first.Plane.Name, formatVec(first.Point), scene.World.Time(), first.ImpactSpeed)
	if ok {
		fmt.Printf("prediction error: %.3f m\n", first.Point.Sub(hit.Point).Len())
	}
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
}
