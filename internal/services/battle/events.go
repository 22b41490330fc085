package battle

import (
	"fmt"

	"github.com/skyfleet/starhunt/internal/model"
)

func promptEvent(id model.ParticipantID, enc *model.Encounter, round int, state battleState) model.RenderEvent {
	return model.RenderEvent{
		Kind:        model.EventBattlePrompt,
		Channel:     enc.Channel,
		Participant: id,
		Title:       fmt.Sprintf("Round %d", round),
		Description: "Choose your action: Attack, Defend, or Flee.",
		Fields: []model.EventField{
			{Name: "Your HP", Value: fmt.Sprintf("%d", state.playerHP)},
			{Name: "Your Defense", Value: fmt.Sprintf("%d", state.defense)},
			{Name: fmt.Sprintf("%s HP", enc.Ship.Name), Value: fmt.Sprintf("%d", state.enemyHP)},
		},
	}
}

func roundEvent(id model.ParticipantID, enc *model.Encounter, round model.BattleRound) model.RenderEvent {
	var desc string
	switch round.Action {
	case model.ActionAttack:
		desc = fmt.Sprintf("You fired the %s for %d damage", round.WeaponUsed, round.DamageDealt)
		if round.TargetModule != "" {
			desc += fmt.Sprintf(", striking the enemy's %s", round.TargetModule)
		}
		desc += "."
	case model.ActionDefend:
		desc = fmt.Sprintf("You braced for impact, gaining %d defense.", round.DefenseGained)
	default:
		desc = "You hesitated and took no action."
	}
	if round.DamageTaken > 0 {
		desc += fmt.Sprintf(" The %s retaliated for %d damage.", enc.Ship.Name, round.DamageTaken)
	}

	return model.RenderEvent{
		Kind:        model.EventBattleRound,
		Channel:     enc.Channel,
		Participant: id,
		Title:       fmt.Sprintf("Round %d resolved", round.Number),
		Description: desc,
		Fields: []model.EventField{
			{Name: "Your HP", Value: fmt.Sprintf("%d", round.PlayerHP)},
			{Name: fmt.Sprintf("%s HP", enc.Ship.Name), Value: fmt.Sprintf("%d", round.EnemyHP)},
		},
	}
}

func outcomeEvent(id model.ParticipantID, enc *model.Encounter, report *model.BattleReport) model.RenderEvent {
	event := model.RenderEvent{
		Kind:        model.EventBattleOutcome,
		Channel:     enc.Channel,
		Participant: id,
		Image:       enc.Ship.Image,
	}

	switch report.Outcome {
	case model.OutcomeVictory:
		event.Title = fmt.Sprintf("%s destroyed!", enc.Ship.Name)
		event.Description = fmt.Sprintf("The %s is yours, along with %d credits of salvage.", enc.Ship.Name, report.Reward)
	case model.OutcomeDefeat:
		event.Title = "Your ship was destroyed"
		event.Description = fmt.Sprintf("The %s got the better of you. It remains at large.", enc.Ship.Name)
	case model.OutcomeFled:
		event.Title = "You fled the battle"
		event.Description = fmt.Sprintf("The %s remains at large.", enc.Ship.Name)
	}
	return event
}
