// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/quilter-build/quilter/cmd/quilter"

func main() {
	cmd.Execute()
}
