package protocol

import "testing"

func TestMessageConstants(t *testing.T) {
	if MsgHello != "hello" {
		t.Fatalf("MsgHello = %q, want %q", MsgHello, "hello")
	}
	if MsgPose != "pose" {
		t.Fatalf("MsgPose = %q, want %q", MsgPose, "pose")
	}
	if MsgControl != "control" {
		t.Fatalf("MsgControl = %q, want %q", MsgControl, "control")
	}
	if MsgWelcome != "welcome" {
		t.Fatalf("MsgWelcome = %q, want %q", MsgWelcome, "welcome")
	}
	if MsgState != "state" {
		t.Fatalf("MsgState = %q, want %q", MsgState, "state")
	}
}

func TestTimingSanity(t *testing.T) {
	if SimTickHz <= 0 || BroadcastHz <= 0 {
		t.Fatalf("timing constants must be > 0")
	}
	if SimTickHz%BroadcastHz != 0 {
		t.Fatalf("SimTickHz %% BroadcastHz != 0 (%d %% %d)", SimTickHz, BroadcastHz)
	}
}

func TestPoseFrameRoundTrip(t *testing.T) {
	in := PoseFrame{
		Persons: []Person{{
			ID:        1,
			LeftHand:  Hand{X: 100, Y: 200, Visibility: 0.9, Valid: true},
			RightHand: Hand{X: 300, Y: 400, Valid: false},
		}},
		Gesture: Gesture{LeftOK: true},
	}

	b, err := Encode(MsgPose, in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != MsgPose {
		t.Fatalf("envelope type = %q, want %q", env.T, MsgPose)
	}
	out, err := DecodePayload[PoseFrame](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(out.Persons) != 1 || out.Persons[0] != in.Persons[0] {
		t.Fatalf("persons round trip mismatch: %+v", out.Persons)
	}
	if out.Gesture != in.Gesture {
		t.Fatalf("gesture round trip mismatch: %+v", out.Gesture)
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	if _, err := Encode("", Hello{}); err == nil {
		t.Fatalf("expected error for empty envelope type")
	}
	if _, err := Encode(MsgHello, nil); err == nil {
		t.Fatalf("expected error for nil payload")
	}
}

func TestDecodeRejectsEmpty(t *testing.T) {
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Fatalf("expected error for empty envelope bytes")
	}
	if _, err := DecodePayload[Hello](Envelope{T: MsgHello}); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
