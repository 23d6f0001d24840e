// Command trace runs the animation without a window and prints the poses it
// produces, one YAML document per sampled frame.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/rotate/anim"
	"github.com/milk9111/rotate/prefabs"
)

type sample struct {
	Time      float64    `yaml:"t"`
	Spinning  bool       `yaml:"spinning"`
	Speed     float64    `yaml:"speed"`
	Heading   float64    `yaml:"heading"`
	Orbit     float64    `yaml:"orbit"`
	Professor [3]float64 `yaml:"professor"`
	Fish      [3]float64 `yaml:"fish"`
	FishYaw   float64    `yaml:"fish_yaw"`
}

func main() {
	configPath := flag.String("config", "", "scene spec yaml (default: embedded demo.yaml)")
	seconds := flag.Float64("seconds", 10, "simulated time")
	fps := flag.Int("fps", 60, "simulated frame rate")
	every := flag.Int("every", 30, "print every Nth frame")
	flag.Parse()

	spec, err := prefabs.LoadDemoSpec(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := trace(os.Stdout, anim.New(spec.Animation), *seconds, *fps, *every); err != nil {
		log.Fatal(err)
	}
}

func trace(out io.Writer, ctrl *anim.Controller, seconds float64, fps, every int) error {
	if fps <= 0 || every <= 0 {
		return fmt.Errorf("trace: fps and every must be positive")
	}
	enc := yaml.NewEncoder(out)
	defer enc.Close()

	dt := 1 / float64(fps)
	frames := int(seconds * float64(fps))
	for i := 1; i <= frames; i++ {
		f, err := ctrl.Advance(dt)
		if err != nil {
			return err
		}
		if i%every != 0 {
			continue
		}
		p, fish := ctrl.Professor(), ctrl.Fish()
		if err := enc.Encode(sample{
			Time:      float64(i) * dt,
			Spinning:  p.Spinning,
			Speed:     p.Speed,
			Heading:   p.HeadingDeg,
			Orbit:     fish.OrbitDeg,
			Professor: f.Professor.Position,
			Fish:      f.Fish.Position,
			FishYaw:   f.Fish.Yaw(),
		}); err != nil {
			return fmt.Errorf("trace: encode frame %d: %w", i, err)
		}
	}
	return nil
}
