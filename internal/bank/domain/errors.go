package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region InsufficientFundsError

type InsufficientFundsError struct {
	Msg string
}

func (e *InsufficientFundsError) Error() string {
	return e.Msg
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

//endregion

//region AccountNotFoundError

type AccountNotFoundError struct {
	Msg string
}

func (e *AccountNotFoundError) Error() string {
	return e.Msg
}

func (e *AccountNotFoundError) Is(target error) bool {
	_, ok := target.(*AccountNotFoundError)
	return ok
}

//endregion

//region AccountExistsError

type AccountExistsError struct {
	Msg string
}

func (e *AccountExistsError) Error() string {
	return e.Msg
}

func (e *AccountExistsError) Is(target error) bool {
	_, ok := target.(*AccountExistsError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region UserExistsError

type UserExistsError struct {
	Msg string
}

func (e *UserExistsError) Error() string {
	return e.Msg
}

func (e *UserExistsError) Is(target error) bool {
	_, ok := target.(*UserExistsError)
	return ok
}

//endregion

//region CourseNotFoundError

type CourseNotFoundError struct {
	Msg string
}

func (e *CourseNotFoundError) Error() string {
	return e.Msg
}

func (e *CourseNotFoundError) Is(target error) bool {
	_, ok := target.(*CourseNotFoundError)
	return ok
}

//endregion

//region VoucherNotFoundError

type VoucherNotFoundError struct {
	Msg string
}

func (e *VoucherNotFoundError) Error() string {
	return e.Msg
}

func (e *VoucherNotFoundError) Is(target error) bool {
	_, ok := target.(*VoucherNotFoundError)
	return ok
}

//endregion

//region VoucherUsedError

type VoucherUsedError struct {
	Msg string
}

func (e *VoucherUsedError) Error() string {
	return e.Msg
}

func (e *VoucherUsedError) Is(target error) bool {
	_, ok := target.(*VoucherUsedError)
	return ok
}

//endregion

//region AlreadyEnrolledError

type AlreadyEnrolledError struct {
	Msg string
}

func (e *AlreadyEnrolledError) Error() string {
	return e.Msg
}

func (e *AlreadyEnrolledError) Is(target error) bool {
	_, ok := target.(*AlreadyEnrolledError)
	return ok
}

//endregion

//region CodeGenerationError

type CodeGenerationError struct {
	Msg string
}

func (e *CodeGenerationError) Error() string {
	return e.Msg
}

func (e *CodeGenerationError) Is(target error) bool {
	_, ok := target.(*CodeGenerationError)
	return ok
}

//endregion

//region InvalidCredentialsError

type InvalidCredentialsError struct {
	Msg string
}

func (e *InvalidCredentialsError) Error() string {
	return e.Msg
}

func (e *InvalidCredentialsError) Is(target error) bool {
	_, ok := target.(*InvalidCredentialsError)
	return ok
}

//endregion
