package handler

import "github.com/itisal/itisal-backend/internal/customer"

type CustomerRequest struct {
	PhoneNumber    string                 `json:"phoneNumber" validate:"required,numeric,max=15"`
	Name           string                 `json:"name" validate:"required"`
	Address        string                 `json:"address" validate:"required"`
	PaymentMethods *PaymentMethodsRequest `json:"paymentMethods"`
	RegionID       *string                `json:"regionId"`
}

type PaymentMethodsRequest struct {
	Cash   bool `json:"cash"`
	Visa   bool `json:"visa"`
	Credit bool `json:"credit"`
}

func (cr *CustomerRequest) ToDomain() customer.Customer {
	// cash is the default payment method when the form sends nothing
	methods := customer.PaymentMethods{Cash: true}
	if cr.PaymentMethods != nil {
		methods = customer.PaymentMethods{
			Cash:   cr.PaymentMethods.Cash,
			Visa:   cr.PaymentMethods.Visa,
			Credit: cr.PaymentMethods.Credit,
		}
	}

	return customer.Customer{
		PhoneNumber:    cr.PhoneNumber,
		Name:           cr.Name,
		Address:        cr.Address,
		PaymentMethods: methods,
		RegionID:       cr.RegionID,
	}
}

type CustomerResponse struct {
	Customer customer.Customer `json:"customer"`
}
