// Package report exports verification results in machine-readable form
// for CI consumption.
package report

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/aerobeat/absetup/pkg/errors"
	"github.com/aerobeat/absetup/pkg/types"
)

// JUnit renders a verification result as a JUnit XML test suite, one
// test case per required path.
func JUnit(result *types.VerifyResult) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	failures := 0
	for _, check := range result.Checks {
		if !check.Exists {
			failures++
		}
	}

	suite := doc.CreateElement("testsuite")
	suite.CreateAttr("name", "absetup.verify")
	suite.CreateAttr("tests", fmt.Sprintf("%d", len(result.Checks)))
	suite.CreateAttr("failures", fmt.Sprintf("%d", failures))

	for _, check := range result.Checks {
		tc := suite.CreateElement("testcase")
		tc.CreateAttr("classname", "structure")
		tc.CreateAttr("name", check.Path)

		if !check.Exists {
			failure := tc.CreateElement("failure")
			failure.CreateAttr("message", "path missing")
			failure.SetText(fmt.Sprintf("required path %s does not exist", check.Path))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrReportWrite, "failed to serialize JUnit report")
	}

	return out, nil
}

// WriteJUnit writes the JUnit report for a verification result to path
func WriteJUnit(fs types.FS, path string, result *types.VerifyResult) error {
	data, err := JUnit(result)
	if err != nil {
		return err
	}

	if err := fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrReportWrite, "failed to write JUnit report to %s", path)
	}

	return nil
}
