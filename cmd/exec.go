package cmd

import (
	"encoding/hex"
	"errors"

	"github.com/spf13/cobra"

	"github.com/DefiantLabs/cosmos-tokenfactory/config"
	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/bindings"
	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

var (
	execSender string
	execMsg    string
)

func init() {
	execCmd.Flags().StringVar(&execSender, "sender", "", "identity the message is sent as")
	execCmd.Flags().StringVar(&execMsg, "msg", "", "token factory message as JSON, @file or - for stdin")
	rootCmd.AddCommand(execCmd)
}

type execResult struct {
	Method     string            `json:"method"`
	Denom      string            `json:"denom,omitempty"`
	Data       string            `json:"data,omitempty"`
	Attributes map[string]string `json:"attributes"`
}

var execCmd = &cobra.Command{
	Use:   "exec",
	Short: "Executes one token factory message against the registry.",
	Long: `Executes a JSON encoded token factory message such as
	{"token":{"create_denom":{"subdenom":"fundz"}}} on behalf of --sender. The message
	either commits completely or not at all.`,
	PreRunE: setupExec,
	RunE: withRegistry(func(cmd *cobra.Command, args []string) error {
		raw, err := readJSONArg(execMsg)
		if err != nil {
			return err
		}

		messenger := bindings.NewMessenger(reg.store.DB, reg.addresses, reg.publisher)
		res, err := messenger.DispatchRaw(cmd.Context(), execSender, raw)
		if err != nil {
			config.Log.Error("Token factory message failed", err)
			return err
		}

		out := execResult{Attributes: make(map[string]string, len(res.Attributes))}
		for _, attr := range res.Attributes {
			out.Attributes[attr.Key] = attr.Value
		}
		out.Method = out.Attributes["method"]

		if len(res.Data) > 0 {
			out.Data = hex.EncodeToString(res.Data)
			denom, err := types.ParseCreateDenomReply(res.Data)
			if err != nil {
				return err
			}
			out.Denom = denom
		}

		return printJSON(out)
	}),
}

func setupExec(cmd *cobra.Command, args []string) error {
	if execSender == "" {
		return errors.New("--sender must be set")
	}
	if execMsg == "" {
		return errors.New("--msg must be set")
	}
	return setupRegistry(cmd, args)
}
