// Copyright 2026 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package term

import "fmt"

// InvalidTermError is returned when a term cannot be constructed.
type InvalidTermError struct {
	Kind     Kind
	Value    string
	Lang     string
	Datatype IRI
	Reason   string
}

func (e *InvalidTermError) Error() string {
	switch {
	case e.Kind == KindLiteral && e.Lang != "":
		return fmt.Sprintf("invalid literal %q@%s^^%v: %s", e.Value, e.Lang, e.Datatype, e.Reason)
	case e.Kind == KindLiteral:
		return fmt.Sprintf("invalid literal %q^^%v: %s", e.Value, e.Datatype, e.Reason)
	case e.Value != "":
		return fmt.Sprintf("invalid %v %q: %s", e.Kind, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %v: %s", e.Kind, e.Reason)
}
