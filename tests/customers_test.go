package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/itisal/itisal-backend/internal/customer"
)

func (s *APITestSuite) TestCustomerLookupMiss() {
	response, err := http.Get(fmt.Sprintf("%s/customers/phone/0599999999", s.baseUrl))
	s.NoError(err)
	defer response.Body.Close()

	s.Equal(http.StatusNotFound, response.StatusCode)

	var body struct {
		Message string `json:"message"`
		Key     string `json:"key"`
	}
	s.NoError(json.NewDecoder(response.Body).Decode(&body))
	s.Equal("customer.notFound", body.Key)
}

func (s *APITestSuite) TestCustomerCreateAndLookup() {
	payload := `{"phoneNumber":"0599999999","name":"John","address":"123 Main St"}`

	createResp, err := http.Post(
		fmt.Sprintf("%s/customers", s.baseUrl),
		"application/json",
		bytes.NewBufferString(payload),
	)
	s.NoError(err)
	defer createResp.Body.Close()

	s.Equal(http.StatusOK, createResp.StatusCode)

	var created struct {
		Customer customer.Customer `json:"customer"`
	}
	s.NoError(json.NewDecoder(createResp.Body).Decode(&created))
	s.NotEmpty(created.Customer.ID)
	s.True(created.Customer.PaymentMethods.Cash)
	s.Len(created.Customer.Addresses, 1)
	s.Equal("123 Main St", created.Customer.Addresses[0].Street)

	lookupResp, err := http.Get(fmt.Sprintf("%s/customers/phone/0599999999", s.baseUrl))
	s.NoError(err)
	defer lookupResp.Body.Close()

	s.Equal(http.StatusOK, lookupResp.StatusCode)

	var found struct {
		Customer customer.Customer `json:"customer"`
	}
	s.NoError(json.NewDecoder(lookupResp.Body).Decode(&found))
	s.Equal(created.Customer.ID, found.Customer.ID)
}
