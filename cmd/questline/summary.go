package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/questline/internal/entities"
)

// sessionSummary is the printable view of a session
type sessionSummary struct {
	Session      string            `yaml:"session"`
	Character    string            `yaml:"character"`
	Stats        map[string]string `yaml:"stats"`
	Potential    string            `yaml:"potential"`
	Intelligence string            `yaml:"intelligence"`
	Breakthrough string            `yaml:"breakthrough"`
	Completed    int               `yaml:"completed"`
	LastQuest    int               `yaml:"last_quest"`
	Points       int               `yaml:"points"`
	Crew         []crewSummary     `yaml:"crew,omitempty"`
	Inventory    []string          `yaml:"inventory,omitempty"`
	Choices      map[int]string    `yaml:"choices,omitempty"`
	Ended        string            `yaml:"ended,omitempty"`
}

type crewSummary struct {
	Name  string `yaml:"name"`
	Stats string `yaml:"stats"`
}

func summarize(s *entities.Session) *sessionSummary {
	c := s.Character
	out := &sessionSummary{
		Session:      s.ID,
		Character:    c.Name,
		Stats:        map[string]string{},
		Potential:    c.Potential.Label(),
		Intelligence: c.Intelligence.Label(),
		Breakthrough: c.Breakthrough.String(),
		Completed:    s.CompletedCount,
		LastQuest:    s.HighestCompletedQuest(),
		Points:       s.Points,
		Ended:        s.EndReason,
	}
	for _, stat := range entities.AllStats {
		out.Stats[string(stat)] = c.Stats.Tier(stat).Label()
	}
	for _, m := range s.Crew {
		out.Crew = append(out.Crew, crewSummary{Name: m.Name, Stats: tierLine(m.Stats.Tiers)})
	}
	for _, card := range s.Inventory {
		out.Inventory = append(out.Inventory, card.Name+" ("+string(card.Kind)+")")
	}
	if len(s.Choices) > 0 {
		out.Choices = s.Choices
	}
	return out
}

func printSummary(s *entities.Session) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(summarize(s)); err != nil {
		return err
	}
	return enc.Close()
}
