package config

import "github.com/kilianp07/examdist/core/model"

// RoundConfig is one time window of an exam day.
type RoundConfig struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// LabConfig is a lab and its seats per round.
type LabConfig struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// CenterConfig is an exam center with its labs in fill order.
type CenterConfig struct {
	Name string      `json:"name"`
	Link string      `json:"link"`
	Labs []LabConfig `json:"labs"`
}

// CenterModels converts the centers section to model values.
func (c *Config) CenterModels() []model.Center {
	out := make([]model.Center, len(c.Centers))
	for i, ctr := range c.Centers {
		labs := make([]model.Lab, len(ctr.Labs))
		for j, l := range ctr.Labs {
			labs[j] = model.Lab{Name: l.Name, Capacity: l.Capacity}
		}
		out[i] = model.Center{Name: ctr.Name, Link: ctr.Link, Labs: labs}
	}
	return out
}

// RoundLabels returns the display label of every configured round.
func (c *Config) RoundLabels() []string {
	rounds := make([]model.Round, len(c.Rounds))
	for i, r := range c.Rounds {
		rounds[i] = model.Round{From: r.From, To: r.To, Label: r.Label}
	}
	return model.RoundLabels(rounds)
}

// Schedule builds the allocation parameters for totalItems examinees.
func (c *Config) Schedule(totalItems int) model.ScheduleConfig {
	return model.ScheduleConfig{
		RoundsPerDay: len(c.Rounds),
		RoundLabels:  c.RoundLabels(),
		TotalItems:   totalItems,
	}
}
