// Package admission estimates admission probability for a university
// program from a historical admissions table, the applicant's top-6
// average and their extracurricular count.
package admission
