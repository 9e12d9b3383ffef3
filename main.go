package main

import "github.com/diankaa7/splyyt/cmd"

func main() {
	cmd.Execute()
}
