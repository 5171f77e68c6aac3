package partitioning

import (
	"fmt"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ValidationError represents one structural problem of a result
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

func (ve ValidationError) Error() string {
	if ve.Value != "" {
		return fmt.Sprintf("validation error in field '%s': %s (value: %s)", ve.Field, ve.Message, ve.Value)
	}
	return fmt.Sprintf("validation error in field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}
	return fmt.Sprintf("%d validation errors: %s (and %d more)", len(ve), ve[0].Error(), len(ve)-1)
}

// ValidateResult checks that the partitions are disjoint, cover every vertex
// of the input graph and respect their target sizes. It returns nil or a
// ValidationErrors value.
func ValidateResult(result *Result) error {
	var errs ValidationErrors

	if len(result.Partitions) != len(result.TargetSizes) {
		errs = append(errs, ValidationError{
			Field:   "partitions",
			Message: "number of partitions differs from number of target sizes",
			Value:   fmt.Sprintf("%d != %d", len(result.Partitions), len(result.TargetSizes)),
		})
	}

	assigned := roaring64.New()
	for i, part := range result.Partitions {
		if part == nil {
			errs = append(errs, ValidationError{Field: "partitions", Message: "nil partition", Value: strconv.Itoa(i)})
			continue
		}
		if part.ID() != i {
			errs = append(errs, ValidationError{
				Field:   "partitions",
				Message: "partition id does not match its position",
				Value:   fmt.Sprintf("%d at %d", part.ID(), i),
			})
		}
		if i < len(result.TargetSizes) && part.NumberOfNodes() > result.TargetSizes[i] {
			errs = append(errs, ValidationError{
				Field:   "partitions",
				Message: "partition exceeds its target size",
				Value:   fmt.Sprintf("%d: %d > %d", i, part.NumberOfNodes(), result.TargetSizes[i]),
			})
		}
		if overlap := roaring64.And(assigned, part.nodes); !overlap.IsEmpty() {
			errs = append(errs, ValidationError{
				Field:   "partitions",
				Message: "vertices assigned more than once",
				Value:   fmt.Sprintf("partition %d, %d vertices", i, overlap.GetCardinality()),
			})
		}
		assigned.Or(part.nodes)
	}

	if got := int(assigned.GetCardinality()); got != result.NumNodes {
		errs = append(errs, ValidationError{
			Field:   "num_nodes",
			Message: "assigned vertices differ from vertices of the input graph",
			Value:   fmt.Sprintf("%d != %d", got, result.NumNodes),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
