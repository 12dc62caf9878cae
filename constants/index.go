package constants

// Domain failure codes. These travel inside domain.Failure and are the
// contract between the core and every caller, so they never change casing.
const (
	INVALID_SEAT_COLUMN                  = "INVALID_SEAT_COLUMN"
	SEAT_COLUMN_OUT_OF_RANGE             = "SEAT_COLUMN_OUT_OF_RANGE"
	PREFERENTIAL_SEATS_LIMIT_EXCEEDED    = "PREFERENTIAL_SEATS_LIMIT_EXCEEDED"
	PREFERENTIAL_SEAT_NOT_IN_ROW         = "PREFERENTIAL_SEAT_NOT_IN_ROW"
	DUPLICATE_PREFERENTIAL_SEAT          = "DUPLICATE_PREFERENTIAL_SEAT"
	ARRAY_LENGTH_OUT_OF_RANGE            = "ARRAY_LENGTH_OUT_OF_RANGE"
	INVALID_ROOM_CAPACITY                = "INVALID_ROOM_CAPACITY"
	INVALID_NUMBER_OF_PREFERENTIAL_SEATS = "INVALID_NUMBER_OF_PREFERENTIAL_SEATS"
	INVALID_SEAT_ROW                     = "INVALID_SEAT_ROW"
	INVALID_ROOM_IDENTIFIER              = "INVALID_ROOM_IDENTIFIER"
	INVALID_ROOM_STATUS                  = "INVALID_ROOM_STATUS"
	INVALID_SCREEN_SIZE                  = "INVALID_SCREEN_SIZE"
	INVALID_SCREEN_TYPE                  = "INVALID_SCREEN_TYPE"
	INVALID_BOOKING_START_TIME           = "INVALID_BOOKING_START_TIME"
	INVALID_BOOKING_DURATION             = "INVALID_BOOKING_DURATION"
	ROOM_NOT_AVAILABLE_FOR_PERIOD        = "ROOM_NOT_AVAILABLE_FOR_PERIOD"
	BOOKING_NOT_FOUND_IN_FUTURE_SCHEDULE = "BOOKING_NOT_FOUND_IN_FUTURE_SCHEDULE"
	BOOKING_ALREADY_STARTED              = "BOOKING_ALREADY_STARTED"
	INVALID_BOOKING_TYPE_FOR_REMOVAL     = "INVALID_BOOKING_TYPE_FOR_REMOVAL"
	CLEANING_ASSOCIATED_WITH_SCREENING   = "CLEANING_ASSOCIATED_WITH_SCREENING"
)

// HTTP layer messages.
const (
	NOT_ADMIN                  = "You do not have permission to perform this action"
	DATA_INPUT_IS_NOT_NUMBER   = "Input data is not a number"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read validated input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	MISSING_LOGIN_INPUT        = "Username and password are required"
	INVALID_USERNAME           = "Username does not exist"
	INVALID_PASSWORD           = "Password is incorrect"
	ACCOUNT_NOT_ACTIVE         = "Account is disabled"
	ROOM_NOT_FOUND             = "Room not found"
	BOOKING_NOT_FOUND          = "Booking not found"
	ROOM_HAS_FUTURE_BOOKINGS   = "Room still has future bookings"
)

// Account roles.
const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
	ROLE_STAFF   = "STAFF"
)
