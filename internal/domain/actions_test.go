package domain

import "testing"

func TestParseInput(t *testing.T) {
	tests := []struct {
		input    string
		expected InputAction
	}{
		{"move_left", InputMoveLeft},
		{"MOVE_RIGHT", InputMoveRight},
		{"Jump", InputJump},
		{"dash", InputDash},
		{"ability_0", InputAbility0},
		{"ability_5", InputAbility5},
		{"ability_6", InputUnknown},
		{"", InputUnknown},
	}

	for _, tt := range tests {
		result := ParseInput(tt.input)
		if result != tt.expected {
			t.Errorf("ParseInput(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestInputAction_String(t *testing.T) {
	tests := []struct {
		action   InputAction
		expected string
	}{
		{InputMoveLeft, "move_left"},
		{InputAttack, "attack"},
		{InputAbility3, "ability_3"},
		{InputUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("InputAction(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestInputAction_AbilitySlot(t *testing.T) {
	if slot, ok := InputAbility4.AbilitySlot(); !ok || slot != 4 {
		t.Errorf("AbilitySlot() = %d,%v, want 4,true", slot, ok)
	}
	if _, ok := InputJump.AbilitySlot(); ok {
		t.Error("jump must not map to an ability slot")
	}
}

func TestInputState_Horizontal(t *testing.T) {
	var s InputState
	if s.Horizontal() != 0 {
		t.Fatal("idle input must not move")
	}

	s.Set(InputMoveLeft, true)
	if s.Horizontal() != -1 {
		t.Errorf("left = %v, want -1", s.Horizontal())
	}

	s.Set(InputMoveRight, true)
	if s.Horizontal() != 0 {
		t.Errorf("left+right = %v, want 0", s.Horizontal())
	}

	s.Set(InputMoveLeft, false)
	if s.Horizontal() != 1 {
		t.Errorf("right = %v, want 1", s.Horizontal())
	}
}

func TestEventType_ContractNames(t *testing.T) {
	names := []string{
		"game_started", "game_paused", "game_resumed", "game_stopped",
		"level_restarted", "level_loaded", "level_complete", "player_death",
		"enemy_death", "level_up", "ability_used", "experience_gained",
		"item_collected", "damage_dealt", "player_attack", "player_dash",
	}
	for _, name := range names {
		ev := ParseEvent(name)
		if ev == EventUnknown {
			t.Errorf("ParseEvent(%q) returned unknown", name)
			continue
		}
		if ev.String() != name {
			t.Errorf("round trip %q -> %q", name, ev.String())
		}
	}
}
