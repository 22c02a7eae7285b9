package domain

import "strings"

// InputAction - Внутренний числовой идентификатор действия ввода
type InputAction uint8

const (
	InputUnknown InputAction = iota
	InputMoveLeft
	InputMoveRight
	InputMoveUp
	InputMoveDown
	InputJump
	InputAttack
	InputDash
	InputAbility0
	InputAbility1
	InputAbility2
	InputAbility3
	InputAbility4
	InputAbility5
)

// Маппинг для конвертации JSON -> Domain
var inputStringToAction = map[string]InputAction{
	"move_left":  InputMoveLeft,
	"move_right": InputMoveRight,
	"move_up":    InputMoveUp,
	"move_down":  InputMoveDown,
	"jump":       InputJump,
	"attack":     InputAttack,
	"dash":       InputDash,
	"ability_0":  InputAbility0,
	"ability_1":  InputAbility1,
	"ability_2":  InputAbility2,
	"ability_3":  InputAbility3,
	"ability_4":  InputAbility4,
	"ability_5":  InputAbility5,
}

// Маппинг для логов Domain -> String
var inputActionToString = map[InputAction]string{
	InputMoveLeft:  "move_left",
	InputMoveRight: "move_right",
	InputMoveUp:    "move_up",
	InputMoveDown:  "move_down",
	InputJump:      "jump",
	InputAttack:    "attack",
	InputDash:      "dash",
	InputAbility0:  "ability_0",
	InputAbility1:  "ability_1",
	InputAbility2:  "ability_2",
	InputAbility3:  "ability_3",
	InputAbility4:  "ability_4",
	InputAbility5:  "ability_5",
}

// ParseInput конвертирует строку из JSON в InputAction
func ParseInput(s string) InputAction {
	// Делаем нечувствительным к регистру для надежности
	lower := strings.ToLower(strings.TrimSpace(s))
	if val, ok := inputStringToAction[lower]; ok {
		return val
	}
	return InputUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a InputAction) String() string {
	if val, ok := inputActionToString[a]; ok {
		return val
	}
	return "unknown"
}

// AbilitySlot возвращает номер слота для ability_N
func (a InputAction) AbilitySlot() (int, bool) {
	if a >= InputAbility0 && a <= InputAbility5 {
		return int(a - InputAbility0), true
	}
	return 0, false
}

// InputState - последний снимок зажатых клавиш
type InputState struct {
	Left   bool `json:"left"`
	Right  bool `json:"right"`
	Up     bool `json:"up"`
	Down   bool `json:"down"`
	Jump   bool `json:"jump"`
	Attack bool `json:"attack"`
	Dash   bool `json:"dash"`
}

// Set обновляет флаг удерживаемой клавиши
func (s *InputState) Set(a InputAction, pressed bool) {
	switch a {
	case InputMoveLeft:
		s.Left = pressed
	case InputMoveRight:
		s.Right = pressed
	case InputMoveUp:
		s.Up = pressed
	case InputMoveDown:
		s.Down = pressed
	case InputJump:
		s.Jump = pressed
	case InputAttack:
		s.Attack = pressed
	case InputDash:
		s.Dash = pressed
	}
}

// Horizontal - направление по X из зажатых клавиш (-1, 0, 1)
func (s InputState) Horizontal() float64 {
	switch {
	case s.Left && !s.Right:
		return -1
	case s.Right && !s.Left:
		return 1
	}
	return 0
}
