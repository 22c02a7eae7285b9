package domain

import (
	"context"
)

// State возвращает текущее состояние автомата
func (a *AIComponent) State() AIState {
	if a.FSM == nil {
		a.FSM = NewAIFSM()
	}
	return AIState(a.FSM.Current())
}

// Fire переводит автомат по событию. Невозможный переход - false, без паники.
func (a *AIComponent) Fire(event string) bool {
	if a.FSM == nil {
		a.FSM = NewAIFSM()
	}
	if !a.FSM.Can(event) {
		return false
	}
	return a.FSM.Event(context.Background(), event) == nil
}

// Reset возвращает врага в патруль (рестарт уровня)
func (a *AIComponent) Reset() {
	a.FSM = NewAIFSM()
	a.Direction = 0
	a.TargetID = ""
}
