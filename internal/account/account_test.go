package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want account.Role
	}{
		{in: "business", want: account.RoleBusiness},
		{in: " Collector ", want: account.RoleCollector},
		{in: "INDIVIDUAL", want: account.RoleIndividual},
		{in: "", want: account.RoleIndividual},
		{in: "admin", want: account.RoleIndividual},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, account.ParseRole(tt.in))
		})
	}
}

func TestRole_CanSell(t *testing.T) {
	assert.True(t, account.RoleIndividual.CanSell())
	assert.True(t, account.RoleCollector.CanSell())
	assert.False(t, account.RoleBusiness.CanSell())
}
