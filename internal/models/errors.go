package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrProjectStatusInvalid      = errors.New("the project status must be one of ACTIVE, PAUSED, COMPLETED")
	ErrDistributionTypeInvalid   = errors.New("the distribution type must be one of PERCENTAGE, FIXED")
	ErrPercentageOutOfRange      = errors.New("the partner percentage must be between 0 and 100")
	ErrAmountNegative            = errors.New("the transaction amount must not be negative")
	ErrTransactionTypeInvalid    = errors.New("the transaction type must be one of CONTRIBUTION, EXPENSE, REFUND")
	ErrPayerTypeInvalid          = errors.New("the payer type must be one of BOX, PARTNER")
	ErrPayerRequired             = errors.New("expenses paid by a partner must reference the paying partner")
	ErrBeneficiaryRequired       = errors.New("contributions and refunds must reference the partner involved")
	ErrForecastAmountNegative    = errors.New("the forecast amount must not be negative")
	ErrForecastMonthNotUnique    = errors.New("you can not create multiple budget forecasts for the same project and month")
)
