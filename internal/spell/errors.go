package spell

import "errors"

var (
	ErrInvalidModifier                   = errors.New("invalid modifier")
	ErrInvalidSpellTrait                 = errors.New("invalid spell trait")
	ErrInvalidParameterAddition          = errors.New("invalid value for parameter addition")
	ErrUselessAdditionForUnusedParameter = errors.New("useless addition for unused casting parameter")
	ErrUnknownParameter                  = errors.New("unknown casting parameter")
	ErrCanNotChangeNotExistingTrap       = errors.New("can not change not existing trap")
	ErrUnknownModifier                   = errors.New("unknown modifier")
)
