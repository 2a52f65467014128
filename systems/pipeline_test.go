package systems

import "testing"

func TestDefaultPipelineOrder(t *testing.T) {
	pipeline := Default()
	if len(pipeline) != 5 {
		t.Fatalf("Expected 5 systems, got %d", len(pipeline))
	}

	for i := 1; i < len(pipeline); i++ {
		if pipeline[i-1].Priority() >= pipeline[i].Priority() {
			t.Errorf("System %d priority %d not below system %d priority %d",
				i-1, pipeline[i-1].Priority(), i, pipeline[i].Priority())
		}
	}

	if _, ok := pipeline[0].(*KinematicsSystem); !ok {
		t.Errorf("Expected kinematics first, got %T", pipeline[0])
	}
	if _, ok := pipeline[len(pipeline)-1].(*ScoreSystem); !ok {
		t.Errorf("Expected score last, got %T", pipeline[len(pipeline)-1])
	}
}
