package anim

import "fmt"

// Tuning holds the constants that drive the professor and fish motion.
// Angular speeds are degrees per second, linear speeds units per second.
type Tuning struct {
	FishRadius            float64 `yaml:"fish_radius"`
	FishAngularSpeed      float64 `yaml:"fish_angular_speed"`
	FishHeight            float64 `yaml:"fish_height"`
	FishInitialYaw        float64 `yaml:"fish_initial_yaw"`
	ProfessorAngularSpeed float64 `yaml:"professor_angular_speed"`
	PatrolSpeed           float64 `yaml:"patrol_speed"`
	PatrolBound           float64 `yaml:"patrol_bound"`
}

// DefaultTuning returns the demo's stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		FishRadius:            50,
		FishAngularSpeed:      200,
		FishHeight:            -10,
		FishInitialYaw:        90,
		ProfessorAngularSpeed: 80,
		PatrolSpeed:           100,
		PatrolBound:           250,
	}
}

// SpinDuration is the time in seconds a full 180 degree spin takes.
func (t Tuning) SpinDuration() float64 {
	return spinDegrees / t.ProfessorAngularSpeed
}

// Validate rejects tunings the controller cannot make progress with.
func (t Tuning) Validate() error {
	switch {
	case t.FishRadius <= 0:
		return fmt.Errorf("anim: fish_radius must be positive, got %v", t.FishRadius)
	case t.FishAngularSpeed <= 0:
		return fmt.Errorf("anim: fish_angular_speed must be positive, got %v", t.FishAngularSpeed)
	case t.ProfessorAngularSpeed <= 0:
		return fmt.Errorf("anim: professor_angular_speed must be positive, got %v", t.ProfessorAngularSpeed)
	case t.PatrolSpeed == 0:
		return fmt.Errorf("anim: patrol_speed must be non-zero")
	case t.PatrolBound <= 0:
		return fmt.Errorf("anim: patrol_bound must be positive, got %v", t.PatrolBound)
	}
	return nil
}
