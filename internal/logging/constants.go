package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the log output easy to filter and aggregate.
const (
	FieldFile        = "file_path"
	FieldPage        = "page"
	FieldPages       = "pages"
	FieldLine        = "line"
	FieldIBAN        = "iban"
	FieldStatement   = "statement_number"
	FieldCount       = "count"
	FieldDropped     = "dropped"
	FieldReason      = "reason"
	FieldError       = "error"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldTransaction = "transaction_reference"
)
