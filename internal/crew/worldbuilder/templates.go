package worldbuilder

// Biography templates take the first name, hometown, and duty in order.
var biographyTemplates = []string{
	"%s left %s in 1940 and never looked back. Now serves as %s and writes home every Sunday.",
	"Raised in %[2]s, %[1]s volunteered the week war was declared. Known on the station as a steady %[3]s.",
	"%s worked the docks at %s before enlisting. Took to the work of %s faster than anyone expected.",
	"A schoolteacher's child from %[2]s, %[1]s keeps a battered notebook of every sortie. Serves as %[3]s.",
	"%s came over from %s with a cardboard suitcase and a borrowed coat. Trained as %s at Lichfield.",
	"Quiet in the mess and fearless on duty, %[1]s of %[2]s is the crew's most dependable %[3]s.",
}
