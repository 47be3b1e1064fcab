package memory

import (
	"github.com/ruimonteiro/playerdesk/internal/domain/account"
	"github.com/ruimonteiro/playerdesk/internal/domain/player"
)

const (
	PlayerAPIIDMessi    int64 = 30981
	PlayerAPIIDRonaldo  int64 = 30893
	PlayerAPIIDIniesta  int64 = 30955
	AccountNumberMain         = "A-101"
	AccountNumberJoint        = "A-215"
)

func SeedPlayers() []player.Player {
	return []player.Player{
		{PlayerAPIID: PlayerAPIIDMessi, Name: "Lionel Messi"},
		{PlayerAPIID: PlayerAPIIDRonaldo, Name: "Cristiano Ronaldo"},
		{PlayerAPIID: PlayerAPIIDIniesta, Name: "Andres Iniesta"},
	}
}

func SeedAccounts() []account.Account {
	return []account.Account{
		{
			Number:     AccountNumberMain,
			BranchName: "Downtown",
			Balance:    500,
			Depositors: []string{"Johnson"},
		},
		{
			Number:     AccountNumberJoint,
			BranchName: "Mianus",
			Balance:    700,
			Depositors: []string{"Smith", "Hayes"},
		},
	}
}
