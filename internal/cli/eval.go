package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobdeck/flaggate/pkg/flags"
)

var evalSample int

var evalCmd = &cobra.Command{
	Use:   "eval <flag> [user]",
	Short: "Evaluate a flag for a user, or sample the rollout fraction",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().IntVar(&evalSample, "sample", 0, "evaluate over N generated user ids and print the enabled fraction")
}

func runEval(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	evaluator, err := newLocalEvaluator(c, zap.NewNop())
	if err != nil {
		return err
	}

	flag := flags.Flag(args[0])

	if evalSample > 0 {
		return runEvalSample(cmd, evaluator, flag)
	}

	var userID string
	if len(args) == 2 {
		userID = args[1]
	}

	enabled := evaluator.IsEnabledForUser(flag, userID)
	if userID == "" {
		cmd.Println(flag, "=", enabled)
		return nil
	}

	cmd.Println(fmt.Sprintf("%s = %v for %s (bucket %d, rollout %d%%)",
		flag, enabled, userID, flags.Bucket(userID), evaluator.Rollout(flag)))
	return nil
}

// runEvalSample draws random identifiers to show the observed rollout
// fraction, a quick sanity check that a percentage behaves as intended.
func runEvalSample(cmd *cobra.Command, evaluator *flags.Evaluator, flag flags.Flag) error {
	hits := 0
	for i := 0; i < evalSample; i++ {
		if evaluator.IsEnabledForUser(flag, uuid.NewString()) {
			hits++
		}
	}

	fraction := float64(hits) / float64(evalSample)
	cmd.Println(fmt.Sprintf("%s enabled for %d/%d sampled users (%.1f%%)",
		flag, hits, evalSample, fraction*100))
	return nil
}
