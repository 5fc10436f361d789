package golddigger

import (
	"fmt"

	platformcore "github.com/vovakirdan/golddigger/internal/core"
	"github.com/vovakirdan/golddigger/internal/games/golddigger/core"
)

func welcomeDialog() platformcore.Dialog {
	return platformcore.Dialog{
		Kind:  core.ModalWelcome.String(),
		Title: "Welcome to Gold Digger!",
		Lines: []string{
			"Use the arrow keys to mine Gold.",
			"",
			"There is a rumor that a secret artifact",
			"is hidden in the depths...",
		},
		Footer: []string{"Press Enter to continue"},
	}
}

func artifactDialog() platformcore.Dialog {
	return platformcore.Dialog{
		Kind:  core.ModalArtifactFound.String(),
		Title: "You found where the Alien Artifact lives!",
		Lines: []string{
			"You saw how it looks like and became self actualized.",
			"Content to never dig again...",
		},
		Footer: []string{"Press Enter to start over"},
	}
}

func purchaseDialog(currency, price int) platformcore.Dialog {
	return platformcore.Dialog{
		Kind:  core.ModalPurchase.String(),
		Title: "Increase Drill Bit Durability?",
		Lines: []string{
			fmt.Sprintf("Current Gold: %d", currency),
			fmt.Sprintf("$%d Gold = +1%% Durability", price),
		},
		Prompt: "Enter gold amount:",
		Footer: []string{"Press Enter to confirm", "Press Esc to cancel"},
	}
}
