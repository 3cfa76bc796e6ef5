package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// PackageType is the package variant sold with an order. The variant decides
// whether a carrier shipment is required after payment capture.
type PackageType string

const (
	// PackagePDF is the digital report. No shipment is ever created for it;
	// it is delivered implicitly at payment capture.
	PackagePDF PackageType = "pdf"

	// PackagePrint is the printed book. A carrier shipment is triggered when
	// payment for it is captured.
	PackagePrint PackageType = "print"
)

// ParsePackageType converts a request value into a PackageType.
func ParsePackageType(s string) (PackageType, error) {
	switch PackageType(s) {
	case PackagePDF:
		return PackagePDF, nil
	case PackagePrint:
		return PackagePrint, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("package_type",
			fmt.Errorf("%q is not a known package type", s))
	}
}

// Physical reports whether the package requires a carrier shipment.
func (p PackageType) Physical() bool {
	return p == PackagePrint
}

// Validate checks that the PackageType is one of the defined variants.
func (p PackageType) Validate() error {
	_, err := ParsePackageType(string(p))
	return err
}

// String returns the wire value of the package type.
func (p PackageType) String() string {
	return string(p)
}
