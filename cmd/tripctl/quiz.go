package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tripnation/pkg/quiz"
)

type quizOutput struct {
	Profile     quiz.ProfileKey `json:"profile"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Scores      quiz.Scores     `json:"scores"`
	CTAs        []quiz.CTA      `json:"ctas"`
}

func newQuizCmd(opts *options) *cobra.Command {
	var pairs []string
	cmd := &cobra.Command{
		Use:     "quiz",
		Short:   "Classify a traveler from quiz answers",
		Example: `  tripctl quiz --answer q1=praia --answer q2=surf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := parseAnswers(pairs)
			if err != nil {
				return err
			}
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			scores := quiz.Tally(answers, cat.Questions())
			key := scores.Winner()
			profile, _ := cat.Profile(key)
			res := quizOutput{
				Profile:     key,
				Title:       profile.Title,
				Description: profile.Description,
				Scores:      scores,
				CTAs:        profile.CTAs,
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, res)
			}
			fmt.Fprintf(out, "%s (%s)\n%s\n\n", res.Title, res.Profile, res.Description)
			for _, k := range quiz.TieBreakOrder {
				fmt.Fprintf(out, "  %-10s %d\n", k, scores[k])
			}
			for _, cta := range res.CTAs {
				fmt.Fprintf(out, "-> %s: %s\n", cta.Label, cta.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&pairs, "answer", "a", nil, "Answer as question=option, repeatable")
	return cmd
}

func parseAnswers(pairs []string) (quiz.Answers, error) {
	answers := make(quiz.Answers, len(pairs))
	for _, p := range pairs {
		q, v, ok := strings.Cut(p, "=")
		q, v = strings.TrimSpace(q), strings.TrimSpace(v)
		if !ok || q == "" || v == "" {
			return nil, fmt.Errorf("answer %q must look like question=option", p)
		}
		answers[q] = v
	}
	return answers, nil
}
