//go:build unit

package customer_test

import (
	"strings"
	"testing"

	"lng-loading/internal/domain/customer"
	"lng-loading/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CustomerBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCustomerBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestCustomer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Acme Logistics", actual.Name())
		assert.Equal(t, customer.ContractTypeContract, actual.ContractType())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.CustomerBuilder) { b.Name = "" },
				errIs:  customer.ErrEmptyCustomerName,
			},
			{
				name:   "name too long",
				mutate: func(b *builder.CustomerBuilder) { b.Name = strings.Repeat("a", customer.MaxCustomerNameLength+1) },
				errIs:  customer.ErrEmptyCustomerName,
			},
		})
	})

	t.Run("contact validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty contact person",
				mutate: func(b *builder.CustomerBuilder) { b.ContactPerson = "" },
				errIs:  customer.ErrEmptyContactPerson,
			},
			{
				name:   "invalid email",
				mutate: func(b *builder.CustomerBuilder) { b.Email = "not-an-email" },
				errIs:  customer.ErrInvalidEmail,
			},
			{
				name:   "empty phone",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = "" },
				errIs:  customer.ErrEmptyPhone,
			},
			{
				name:   "phone too long",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = strings.Repeat("1", customer.MaxPhoneLength+1) },
				errIs:  customer.ErrPhoneTooLong,
			},
		})
	})

	t.Run("contract type validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "spot contract",
				mutate: func(b *builder.CustomerBuilder) { b.ContractType = "spot" },
			},
			{
				name:   "unknown contract type",
				mutate: func(b *builder.CustomerBuilder) { b.ContractType = "premium" },
				errIs:  customer.ErrInvalidContractType,
			},
		})
	})
}

func TestCustomerUpdate(t *testing.T) {
	c, err := builder.NewCustomerBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("valid update replaces attributes", func(t *testing.T) {
		err := c.Update("Beta Freight", "An Smets", "ops@beta-freight.example", "+32 50 999 000", customer.ContractTypeSpot)
		require.NoError(t, err)
		assert.Equal(t, "Beta Freight", c.Name())
		assert.Equal(t, customer.ContractTypeSpot, c.ContractType())
	})

	t.Run("invalid update leaves entity untouched", func(t *testing.T) {
		before := c.Email()
		err := c.Update(c.Name(), c.ContactPerson(), "broken", c.Phone(), c.ContractType())
		require.ErrorIs(t, err, customer.ErrInvalidEmail)
		assert.Equal(t, before, c.Email())
	})
}
