package cmd

import (
	"fmt"

	"github.com/hyperledger/fabric/common/flogging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"circularchain/contract"
	"circularchain/host"
)

var demoLogger = flogging.MustGetLogger("circularchain.demo")

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted session against an in-memory host",
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	account := viper.GetString("account")
	env := host.NewMockEnv(account, viper.GetUint64("deposit"))
	env.ByteCost = viper.GetUint64("byte_cost")

	c := contract.New(account)

	if err := c.CreateOrUpdateBrand(env, "jardine-matheson",
		"https://example.com/jardine.jpg", "Jardine Matheson",
		"Advancing sustainability across communities, climate and the planet",
		"Agribusiness", "South East Asia"); err != nil {
		return err
	}

	if err := c.CreateProduct(env, "palm-oil-0164b",
		"https://example.com/palm-oil.jpg", "Palm Oil 0164B", "Palm Oil Production",
		"Food", "jardine-matheson", 0, 5, []string{account}, nil); err != nil {
		return err
	}

	if err := c.CreateStage(env, 0, "harvest-2026-08", "Harvest",
		"Fresh fruit bunches harvested and weighed", "Sumatra, Indonesia",
		-0.59, 101.34, account, 0, []string{"fresh fruit bunches"},
		6, 6, 6, 4, 4); err != nil {
		return err
	}
	if err := c.CreateStage(env, 0, "milling-2026-08", "Milling",
		"Crude palm oil extracted at the certified mill", "Sumatra, Indonesia",
		-0.59, 101.34, account, 0, nil,
		3, 3, 3, 4, 4); err != nil {
		return err
	}

	score, err := c.UpdateEsgScore(env, "palm-oil-0164b")
	if err != nil {
		return err
	}
	demoLogger.Infof("Composite ESG score: %.2f", score)

	stages, _ := c.ReadStages(env, 0, 0, 10)
	for _, s := range stages {
		fmt.Printf("stage %-16s climate=%d community=%d nature=%d\n",
			s.StageID, s.Climate, s.Community, s.Nature)
	}
	for _, t := range env.Transfers {
		fmt.Printf("refund %s -> %s: %d\n", t.ReceiptID, t.Recipient, t.Amount)
	}
	return nil
}
