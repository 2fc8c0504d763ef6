// Command heterolattice searches for coincidence-lattice heterostructure
// interfaces between two crystalline layers given as extended-XYZ
// files.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
