// Package transfer contains the ownership transfer command.
package transfer

import (
	"fmt"

	"rentfolio/cmd/root"
	"rentfolio/internal/transfer"

	"github.com/spf13/cobra"
)

var (
	propertyFlag string
	newOwnerFlag string
	renewFlag    bool
)

// Cmd is the transfer command.
var Cmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer a property to a new owner",
	Long: `Transfers a property to a new owner. With --renew, active rental
agreements are closed as RENEWED under the previous owner and recreated
under the new owner; recurring invoice templates on the closed agreements
are deactivated. Security deposits are never moved automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if propertyFlag == "" || newOwnerFlag == "" {
			return fmt.Errorf("--property and --new-owner are required")
		}

		st, snapStore, err := root.OpenStore()
		if err != nil {
			return err
		}

		result, err := transfer.TransferOwnership(st, propertyFlag, newOwnerFlag, renewFlag, root.Log)
		if err != nil {
			return err
		}

		if err := snapStore.Save(st.Snapshot()); err != nil {
			return fmt.Errorf("saving snapshot after transfer: %w", err)
		}

		fmt.Printf("Transferred property %s to owner %s\n", result.PropertyID, result.NewOwnerID)
		fmt.Printf("  renewed agreements:    %d\n", len(result.RenewedAgreementIDs))
		fmt.Printf("  new agreements:        %d\n", len(result.NewAgreementIDs))
		fmt.Printf("  backfilled agreements: %d\n", len(result.BackfilledAgreementIDs))
		if result.DepositFollowUpNeeded {
			fmt.Printf("ACTION REQUIRED: security deposits totaling %s are held under the previous owner and must be transferred manually.\n",
				result.DepositTotal.StringFixed(2))
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVar(&propertyFlag, "property", "", "Property id to transfer")
	Cmd.Flags().StringVar(&newOwnerFlag, "new-owner", "", "Contact id of the new owner")
	Cmd.Flags().BoolVar(&renewFlag, "renew", false, "Renew active agreements under the new owner")
}
