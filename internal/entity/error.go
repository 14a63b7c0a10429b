package entity

import (
	"errors"
)

var (
	ErrDataNotFound     = errors.New("data not found")
	ErrConflictingData  = errors.New("data conflicts with existing data in unique column")
	ErrInvalidData      = errors.New("invalid data")
	ErrUnauthorized     = errors.New("caller is not allowed to access this resource")
	ErrOrderNotEditable = errors.New("only pending orders can be modified")
	ErrConfigPathNotSet = errors.New("CONFIG_PATH not set and -config flag not provided")

	ErrInsufficientCapacity             = errors.New("requested quantity exceeds available units")
	ErrInsufficientCapacityAtSettlement = errors.New("available units insufficient at settlement")
)
